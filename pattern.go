package blend

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// ExtendMode selects how a pattern fills space outside its area.
type ExtendMode uint8

const (
	// ExtendPad repeats the edge pixels.
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the area.
	ExtendRepeat
	// ExtendReflect tiles the area, mirroring every other tile.
	ExtendReflect

	extendModeCount
)

func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "pad"
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	}
	return fmt.Sprintf("ExtendMode(%d)", uint8(m))
}

// Pattern fills space with an area of an image, transformed by a matrix.
//
// Pattern is a plain value holding a reference to its image. It must not
// be copied with assignment; DeepCopy returns an independent pattern.
type Pattern struct {
	_      noCopy
	image  Image
	area   image.Rectangle
	extend ExtendMode
	matrix Matrix
}

// NewPattern creates a pattern over the whole of img.
func NewPattern(img *Image, extend ExtendMode) (Pattern, error) {
	if img == nil || extend >= extendModeCount {
		return Pattern{}, ErrInvalidArgument
	}
	return Pattern{image: img.Clone(), extend: extend, matrix: Identity()}, nil
}

// DeepCopy returns a pattern with the same settings and its own reference
// to the image.
func (p *Pattern) DeepCopy() Pattern {
	return Pattern{
		image:  p.image.Clone(),
		area:   p.area,
		extend: p.extend,
		matrix: p.Matrix(),
	}
}

// Image returns a reference to the pattern's image.
func (p *Pattern) Image() Image { return p.image.Clone() }

// SetImage replaces the image and resets the area to all of it.
// A nil img drops the image.
func (p *Pattern) SetImage(img *Image) {
	var next Image
	if img != nil {
		next = img.Clone()
	}
	p.image.Reset()
	p.image = next
	p.area = image.Rectangle{}
}

// ResetImage drops the image.
func (p *Pattern) ResetImage() {
	p.image.Reset()
	p.area = image.Rectangle{}
}

// Area returns the part of the image the pattern uses. An empty area
// stands for the whole image.
func (p *Pattern) Area() image.Rectangle { return p.area }

// SetArea restricts the pattern to r, which must lie inside the image.
func (p *Pattern) SetArea(r image.Rectangle) error {
	if !r.Empty() && !r.In(image.Rect(0, 0, p.image.Width(), p.image.Height())) {
		return ErrInvalidArgument
	}
	p.area = r
	return nil
}

// ResetArea makes the pattern use the whole image again.
func (p *Pattern) ResetArea() { p.area = image.Rectangle{} }

// ExtendMode returns the extend mode.
func (p *Pattern) ExtendMode() ExtendMode { return p.extend }

// SetExtendMode sets the extend mode.
func (p *Pattern) SetExtendMode(m ExtendMode) error {
	if m >= extendModeCount {
		return ErrInvalidArgument
	}
	p.extend = m
	return nil
}

// Matrix returns the pattern's transformation matrix.
func (p *Pattern) Matrix() Matrix {
	if p.matrix == (Matrix{}) {
		return Identity()
	}
	return p.matrix
}

// ApplyMatrixOp implements Transformable.
func (p *Pattern) ApplyMatrixOp(op MatrixOp, data []float64) error {
	m := p.Matrix()
	if err := m.Apply(op, data); err != nil {
		return err
	}
	p.matrix = m
	return nil
}

// ColorAt returns the pattern color at (x, y) in user space.
func (p *Pattern) ColorAt(x, y float64) color.NRGBA {
	r := p.area
	if r.Empty() {
		r = image.Rect(0, 0, p.image.Width(), p.image.Height())
	}
	if r.Empty() {
		return color.NRGBA{}
	}
	inv, ok := p.Matrix().Invert()
	if !ok {
		return color.NRGBA{}
	}
	src := inv.TransformPoint(Pt(x, y))
	ix := extend(int(math.Floor(src.X)), r.Dx(), p.extend)
	iy := extend(int(math.Floor(src.Y)), r.Dy(), p.extend)
	return p.image.At(r.Min.X+ix, r.Min.Y+iy)
}

// extend maps i into [0, n) according to mode.
func extend(i, n int, mode ExtendMode) int {
	switch mode {
	case ExtendRepeat:
		i %= n
		if i < 0 {
			i += n
		}
	case ExtendReflect:
		i %= 2 * n
		if i < 0 {
			i += 2 * n
		}
		if i >= n {
			i = 2*n - 1 - i
		}
	default:
		i = min(max(i, 0), n-1)
	}
	return i
}

// Equal reports whether both patterns use equal images with the same
// settings.
func (p *Pattern) Equal(other *Pattern) bool {
	return p.area == other.area &&
		p.extend == other.extend &&
		p.Matrix() == other.Matrix() &&
		p.image.Equal(&other.image)
}

// Reset drops the image and restores the default settings.
func (p *Pattern) Reset() {
	p.image.Reset()
	p.area = image.Rectangle{}
	p.extend = ExtendPad
	p.matrix = Identity()
}

func (p *Pattern) String() string {
	return fmt.Sprintf("Pattern(image=%v, area=%v, extend=%v, matrix=%v)",
		p.image, p.area, p.extend, p.Matrix())
}
