package blend

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// TranslateMatrix creates a translation matrix.
func TranslateMatrix(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// ScaleMatrix creates a scaling matrix.
func ScaleMatrix(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// SkewMatrix creates a skew matrix from the tangents of the skew angles.
func SkewMatrix(x, y float64) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// RotateMatrix creates a rotation matrix (angle in radians) about (cx, cy).
func RotateMatrix(angle, cx, cy float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: cx - cos*cx + sin*cy,
		D: sin, E: cos, F: cy - sin*cx - cos*cy,
	}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse matrix, or false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// MatrixOp selects how Apply changes a matrix.
//
// Ops without the Post prefix act in user space: the new transform is
// applied to points before the existing one. Post ops act after it.
type MatrixOp uint8

const (
	MatrixOpReset         MatrixOp = iota // no data
	MatrixOpAssign                        // a b c d e f
	MatrixOpTranslate                     // x y
	MatrixOpScale                         // x y
	MatrixOpSkew                          // x y
	MatrixOpRotate                        // angle
	MatrixOpRotatePt                      // angle cx cy
	MatrixOpTransform                     // a b c d e f
	MatrixOpPostTranslate                 // x y
	MatrixOpPostScale                     // x y
	MatrixOpPostSkew                      // x y
	MatrixOpPostRotate                    // angle
	MatrixOpPostRotatePt                  // angle cx cy
	MatrixOpPostTransform                 // a b c d e f

	matrixOpCount
)

var matrixOpArgs = [matrixOpCount]int{0, 6, 2, 2, 2, 1, 3, 6, 2, 2, 2, 1, 3, 6}

// Apply updates m in place. data must hold at least the number of values
// op takes; otherwise Apply returns ErrInvalidArgument and leaves m as is.
func (m *Matrix) Apply(op MatrixOp, data []float64) error {
	if op >= matrixOpCount || len(data) < matrixOpArgs[op] {
		return ErrInvalidArgument
	}
	var t Matrix
	switch op {
	case MatrixOpReset:
		*m = Identity()
		return nil
	case MatrixOpAssign:
		*m = matrixOf(data)
		return nil
	case MatrixOpTranslate, MatrixOpPostTranslate:
		t = TranslateMatrix(data[0], data[1])
	case MatrixOpScale, MatrixOpPostScale:
		t = ScaleMatrix(data[0], data[1])
	case MatrixOpSkew, MatrixOpPostSkew:
		t = SkewMatrix(math.Tan(data[0]), math.Tan(data[1]))
	case MatrixOpRotate, MatrixOpPostRotate:
		t = RotateMatrix(data[0], 0, 0)
	case MatrixOpRotatePt, MatrixOpPostRotatePt:
		t = RotateMatrix(data[0], data[1], data[2])
	case MatrixOpTransform, MatrixOpPostTransform:
		t = matrixOf(data)
	}
	if op >= MatrixOpPostTranslate {
		*m = t.Multiply(*m)
	} else {
		*m = m.Multiply(t)
	}
	return nil
}

func matrixOf(data []float64) Matrix {
	return Matrix{
		A: data[0], B: data[1], C: data[2],
		D: data[3], E: data[4], F: data[5],
	}
}
