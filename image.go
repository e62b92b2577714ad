package blend

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"

	"github.com/gogpu/blend/arraycore"
)

// Image is a reference-counted RGBA pixel buffer (non-premultiplied,
// 4 bytes per pixel). The zero value is an empty 0x0 image.
//
// Copies made with Clone share pixels until one of them is written.
type Image struct {
	obj arraycore.Object
}

// imageData is the payload of an image record.
type imageData struct {
	width  int
	height int
	pix    []uint8
}

func (d *imageData) ClonePayload() any {
	return &imageData{width: d.width, height: d.height, pix: slices.Clone(d.pix)}
}

func (d *imageData) EqualPayload(other any) bool {
	o, _ := other.(*imageData)
	if o == nil {
		return d.width == 0 || d.height == 0
	}
	return d.width == o.width && d.height == o.height && bytes.Equal(d.pix, o.pix)
}

// NewImage creates a transparent image of the given size.
func NewImage(width, height int) (Image, error) {
	if width < 0 || height < 0 {
		return Image{}, ErrInvalidArgument
	}
	if width > 0 && height > math.MaxInt/4/width {
		return Image{}, ErrAllocationFailure
	}
	d := &imageData{width: width, height: height, pix: make([]uint8, width*height*4)}
	return Image{obj: arraycore.NewObject(arraycore.TagImage, d)}, nil
}

// ImageFromStd converts src into a new image. The result's origin is the
// top-left corner of src's bounds.
func ImageFromStd(src image.Image) Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	d := &imageData{width: b.Dx(), height: b.Dy(), pix: dst.Pix}
	return Image{obj: arraycore.NewObject(arraycore.TagImage, d)}
}

func (img *Image) data() *imageData {
	d, _ := img.obj.Payload().(*imageData)
	return d
}

// edit returns pixels that are safe to write, nil for an empty image.
func (img *Image) edit() *imageData {
	img.obj.MakeMutable()
	return img.data()
}

// Width returns the width of the image.
func (img *Image) Width() int {
	if d := img.data(); d != nil {
		return d.width
	}
	return 0
}

// Height returns the height of the image.
func (img *Image) Height() int {
	if d := img.data(); d != nil {
		return d.height
	}
	return 0
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img.Width() == 0 || img.Height() == 0
}

// At returns the color of a single pixel, transparent outside the image.
func (img *Image) At(x, y int) color.NRGBA {
	d := img.data()
	if d == nil || x < 0 || x >= d.width || y < 0 || y >= d.height {
		return color.NRGBA{}
	}
	i := (y*d.width + x) * 4
	return color.NRGBA{R: d.pix[i], G: d.pix[i+1], B: d.pix[i+2], A: d.pix[i+3]}
}

// Set sets the color of a single pixel. Points outside the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if x < 0 || x >= img.Width() || y < 0 || y >= img.Height() {
		return
	}
	d := img.edit()
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*d.width + x) * 4
	d.pix[i], d.pix[i+1], d.pix[i+2], d.pix[i+3] = n.R, n.G, n.B, n.A
}

// Fill sets every pixel to c.
func (img *Image) Fill(c color.Color) {
	if img.IsEmpty() {
		return
	}
	d := img.edit()
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(d.pix); i += 4 {
		d.pix[i], d.pix[i+1], d.pix[i+2], d.pix[i+3] = n.R, n.G, n.B, n.A
	}
}

// Std returns a copy of the pixels as a standard library image.
func (img *Image) Std() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	if d := img.data(); d != nil {
		copy(out.Pix, d.pix)
	}
	return out
}

// Scaled returns a new image of the given size resampled with the
// Catmull-Rom kernel.
func (img *Image) Scaled(width, height int) (Image, error) {
	out, err := NewImage(width, height)
	if err != nil || img.IsEmpty() || out.IsEmpty() {
		return out, err
	}
	dst := &image.NRGBA{Pix: out.data().pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	draw.CatmullRom.Scale(dst, dst.Rect, img.Std(), image.Rect(0, 0, img.Width(), img.Height()), draw.Src, nil)
	return out, nil
}

// Clone returns an image sharing img's pixels.
func (img *Image) Clone() Image {
	return Image{obj: img.obj.Retain()}
}

func (img *Image) sharedClone() {}

// Reset drops img's reference and leaves it empty.
func (img *Image) Reset() {
	img.obj.Release()
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	return img.obj.Equal(other.obj)
}

// sameRecord reports whether both handles refer to one record.
func (img *Image) sameRecord(other *Image) bool {
	return img.obj.Impl == other.obj.Impl
}

func (img Image) String() string {
	return fmt.Sprintf("Image(%dx%d)", img.Width(), img.Height())
}
