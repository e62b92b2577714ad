package blend

// Transformable is implemented by records that carry a transformation
// matrix. The helpers below are thin wrappers over ApplyMatrixOp.
type Transformable interface {
	ApplyMatrixOp(op MatrixOp, data []float64) error
}

// Translate translates t in user space.
func Translate(t Transformable, x, y float64) error {
	return t.ApplyMatrixOp(MatrixOpTranslate, []float64{x, y})
}

// Scale scales t in user space.
func Scale(t Transformable, x, y float64) error {
	return t.ApplyMatrixOp(MatrixOpScale, []float64{x, y})
}

// Skew skews t by the given angles in radians.
func Skew(t Transformable, x, y float64) error {
	return t.ApplyMatrixOp(MatrixOpSkew, []float64{x, y})
}

// Rotate rotates t by angle radians about the origin.
func Rotate(t Transformable, angle float64) error {
	return t.ApplyMatrixOp(MatrixOpRotate, []float64{angle})
}

// RotateAround rotates t by angle radians about (cx, cy).
func RotateAround(t Transformable, angle, cx, cy float64) error {
	return t.ApplyMatrixOp(MatrixOpRotatePt, []float64{angle, cx, cy})
}

// Transform multiplies t's matrix by m in user space.
func Transform(t Transformable, m Matrix) error {
	return t.ApplyMatrixOp(MatrixOpTransform, []float64{m.A, m.B, m.C, m.D, m.E, m.F})
}

// SetMatrix replaces t's matrix with m.
func SetMatrix(t Transformable, m Matrix) error {
	return t.ApplyMatrixOp(MatrixOpAssign, []float64{m.A, m.B, m.C, m.D, m.E, m.F})
}

// ResetMatrix restores t's matrix to the identity.
func ResetMatrix(t Transformable) error {
	return t.ApplyMatrixOp(MatrixOpReset, nil)
}

var (
	_ Transformable = (*Matrix)(nil)
	_ Transformable = (*Pattern)(nil)
	_ Transformable = (*Context)(nil)
)

// ApplyMatrixOp implements Transformable.
func (m *Matrix) ApplyMatrixOp(op MatrixOp, data []float64) error {
	return m.Apply(op, data)
}
