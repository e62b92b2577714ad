package blend

import (
	"fmt"
	"slices"

	"github.com/gogpu/blend/arraycore"
)

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PathCmd is a path command.
type PathCmd uint8

// Path commands. The number of points each command consumes is given by
// PathCmd.Points.
const (
	PathMoveTo PathCmd = iota
	PathLineTo
	PathQuadTo
	PathCubicTo
	PathClose
)

var pathCmdNames = [...]string{"move", "line", "quad", "cubic", "close"}

func (c PathCmd) String() string {
	if int(c) < len(pathCmdNames) {
		return pathCmdNames[c]
	}
	return fmt.Sprintf("PathCmd(%d)", uint8(c))
}

// Points returns the number of points the command consumes.
func (c PathCmd) Points() int {
	switch c {
	case PathMoveTo, PathLineTo:
		return 1
	case PathQuadTo:
		return 2
	case PathCubicTo:
		return 3
	}
	return 0
}

// Path is a reference-counted vector path. The zero value is an empty path.
//
// Copies made with Clone share the command buffer until one of them is
// modified.
type Path struct {
	obj arraycore.Object
}

// pathData is the payload of a path record.
type pathData struct {
	cmds  []PathCmd
	pts   []Point
	start Point // first point of the current subpath
}

func (d *pathData) ClonePayload() any {
	return &pathData{
		cmds:  slices.Clone(d.cmds),
		pts:   slices.Clone(d.pts),
		start: d.start,
	}
}

func (d *pathData) EqualPayload(other any) bool {
	o, _ := other.(*pathData)
	if o == nil {
		return len(d.cmds) == 0
	}
	return slices.Equal(d.cmds, o.cmds) && slices.Equal(d.pts, o.pts)
}

func (p *Path) data() *pathData {
	d, _ := p.obj.Payload().(*pathData)
	return d
}

// edit returns a payload that is safe to write.
func (p *Path) edit() *pathData {
	if p.obj.Impl == nil {
		p.obj = arraycore.NewObject(arraycore.TagPath, &pathData{})
	} else {
		p.obj.MakeMutable()
	}
	return p.data()
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	d := p.edit()
	pt := Pt(x, y)
	d.cmds = append(d.cmds, PathMoveTo)
	d.pts = append(d.pts, pt)
	d.start = pt
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	d := p.edit()
	d.cmds = append(d.cmds, PathLineTo)
	d.pts = append(d.pts, Pt(x, y))
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	d := p.edit()
	d.cmds = append(d.cmds, PathQuadTo)
	d.pts = append(d.pts, Pt(cx, cy), Pt(x, y))
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	d := p.edit()
	d.cmds = append(d.cmds, PathCubicTo)
	d.pts = append(d.pts, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// Close closes the current subpath. The current point returns to its start.
func (p *Path) Close() {
	d := p.edit()
	d.cmds = append(d.cmds, PathClose)
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Len returns the number of commands.
func (p *Path) Len() int {
	if d := p.data(); d != nil {
		return len(d.cmds)
	}
	return 0
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return p.Len() == 0 }

// Commands returns a copy of the command list.
func (p *Path) Commands() []PathCmd {
	if d := p.data(); d != nil {
		return slices.Clone(d.cmds)
	}
	return nil
}

// Points returns a copy of the vertex list.
func (p *Path) Points() []Point {
	if d := p.data(); d != nil {
		return slices.Clone(d.pts)
	}
	return nil
}

// CurrentPoint returns the point the next segment starts from.
func (p *Path) CurrentPoint() (Point, bool) {
	d := p.data()
	if d == nil || len(d.cmds) == 0 {
		return Point{}, false
	}
	if d.cmds[len(d.cmds)-1] == PathClose {
		return d.start, true
	}
	return d.pts[len(d.pts)-1], true
}

// Bounds returns the bounding box of the path's vertices, control points
// included.
func (p *Path) Bounds() (lo, hi Point, ok bool) {
	d := p.data()
	if d == nil || len(d.pts) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = d.pts[0], d.pts[0]
	for _, pt := range d.pts[1:] {
		lo = Pt(min(lo.X, pt.X), min(lo.Y, pt.Y))
		hi = Pt(max(hi.X, pt.X), max(hi.Y, pt.Y))
	}
	return lo, hi, true
}

// Transform applies m to every point of the path.
func (p *Path) Transform(m Matrix) {
	if p.IsEmpty() {
		return
	}
	d := p.edit()
	for i, pt := range d.pts {
		d.pts[i] = m.TransformPoint(pt)
	}
	d.start = m.TransformPoint(d.start)
}

// Clone returns a path sharing p's commands.
func (p *Path) Clone() Path {
	return Path{obj: p.obj.Retain()}
}

func (p *Path) sharedClone() {}

// Reset drops p's reference and leaves it empty.
func (p *Path) Reset() {
	p.obj.Release()
}

// Equal reports whether both paths hold the same commands and points.
func (p *Path) Equal(other *Path) bool {
	return p.obj.Equal(other.obj)
}

func (p Path) String() string {
	return fmt.Sprintf("Path(%d cmds)", p.Len())
}
