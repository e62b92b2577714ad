package blend

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"

	"github.com/gogpu/blend/arraycore"
)

// Context is a reference-counted rendering context. It holds a reference
// to its target image, a transformation matrix with a save/restore stack
// and a fill color.
//
// The context renders into its own reference to the target: when the
// caller still holds the image, the first fill detaches the context's
// copy and Target returns the result.
type Context struct {
	obj arraycore.Object
}

// contextData is the payload of a context record.
type contextData struct {
	target Image
	matrix Matrix
	saved  []Matrix
	fill   color.NRGBA
}

// Release drops the target when the last reference to the context goes.
func (d *contextData) Release() {
	d.target.Reset()
}

func (d *contextData) ClonePayload() any {
	return &contextData{
		target: d.target.Clone(),
		matrix: d.matrix,
		saved:  slices.Clone(d.saved),
		fill:   d.fill,
	}
}

func (d *contextData) EqualPayload(other any) bool {
	o, _ := other.(*contextData)
	if o == nil {
		return d.target.IsEmpty() && d.matrix.IsIdentity() && len(d.saved) == 0
	}
	return d.target.sameRecord(&o.target) &&
		d.matrix == o.matrix &&
		d.fill == o.fill &&
		slices.Equal(d.saved, o.saved)
}

var opaqueBlack = color.NRGBA{A: 255}

// NewContext creates a context rendering into target.
func NewContext(target *Image) (Context, error) {
	if target == nil || target.IsEmpty() {
		return Context{}, ErrInvalidArgument
	}
	d := &contextData{target: target.Clone(), matrix: Identity(), fill: opaqueBlack}
	return Context{obj: arraycore.NewObject(arraycore.TagContext, d)}, nil
}

func (ctx *Context) data() *contextData {
	d, _ := ctx.obj.Payload().(*contextData)
	return d
}

// edit returns a payload that is safe to write.
func (ctx *Context) edit() *contextData {
	if ctx.obj.Impl == nil {
		ctx.obj = arraycore.NewObject(arraycore.TagContext, &contextData{matrix: Identity(), fill: opaqueBlack})
	} else {
		ctx.obj.MakeMutable()
	}
	return ctx.data()
}

// Target returns a reference to the image the context renders into.
func (ctx *Context) Target() Image {
	if d := ctx.data(); d != nil {
		return d.target.Clone()
	}
	return Image{}
}

// Matrix returns the current transformation matrix.
func (ctx *Context) Matrix() Matrix {
	if d := ctx.data(); d != nil {
		return d.matrix
	}
	return Identity()
}

// ApplyMatrixOp implements Transformable.
func (ctx *Context) ApplyMatrixOp(op MatrixOp, data []float64) error {
	m := ctx.Matrix()
	if err := m.Apply(op, data); err != nil {
		return err
	}
	ctx.edit().matrix = m
	return nil
}

// Save pushes the current matrix.
func (ctx *Context) Save() {
	d := ctx.edit()
	d.saved = append(d.saved, d.matrix)
}

// Restore pops the matrix pushed by the matching Save. It reports false
// when nothing was saved.
func (ctx *Context) Restore() bool {
	if d := ctx.data(); d == nil || len(d.saved) == 0 {
		return false
	}
	d := ctx.edit()
	n := len(d.saved) - 1
	d.matrix = d.saved[n]
	d.saved = d.saved[:n]
	return true
}

// SetFillColor sets the color used by FillRect and FillAll.
func (ctx *Context) SetFillColor(c color.Color) {
	ctx.edit().fill = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FillRect fills the device-space bounding box of the rectangle
// (x, y, w, h) transformed by the current matrix.
func (ctx *Context) FillRect(x, y, w, h float64) {
	m := ctx.Matrix()
	corners := [4]Point{
		m.TransformPoint(Pt(x, y)),
		m.TransformPoint(Pt(x+w, y)),
		m.TransformPoint(Pt(x+w, y+h)),
		m.TransformPoint(Pt(x, y+h)),
	}
	lo, hi := corners[0], corners[0]
	for _, p := range corners[1:] {
		lo = Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	r := image.Rect(int(math.Floor(lo.X)), int(math.Floor(lo.Y)), int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)))
	ctx.fill(r)
}

// FillAll fills the whole target.
func (ctx *Context) FillAll() {
	ctx.fill(image.Rect(0, 0, math.MaxInt32, math.MaxInt32))
}

func (ctx *Context) fill(r image.Rectangle) {
	if ctx.data() == nil {
		return
	}
	d := ctx.edit()
	r = r.Intersect(image.Rect(0, 0, d.target.Width(), d.target.Height()))
	if r.Empty() {
		return
	}
	px := d.target.edit()
	dst := &image.NRGBA{Pix: px.pix, Stride: px.width * 4, Rect: image.Rect(0, 0, px.width, px.height)}
	draw.Draw(dst, r, image.NewUniform(d.fill), image.Point{}, draw.Over)
}

// Clone returns a context sharing ctx's state.
func (ctx *Context) Clone() Context {
	return Context{obj: ctx.obj.Retain()}
}

func (ctx *Context) sharedClone() {}

// Reset drops ctx's reference. The target is released with the last one.
func (ctx *Context) Reset() {
	ctx.obj.Release()
}

// Equal reports whether both contexts render into the same image with the
// same state.
func (ctx *Context) Equal(other *Context) bool {
	return ctx.obj.Equal(other.obj)
}

func (ctx Context) String() string {
	t := ctx.Target()
	defer t.Reset()
	return fmt.Sprintf("Context(target=%v, matrix=%v)", t, ctx.Matrix())
}
