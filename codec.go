package blend

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/blend/arraycore"
)

// ImageCodec is a reference-counted image file format: a name, the
// signature that identifies its files, a decoder and, for most formats,
// an encoder. Codec records are never modified after creation.
type ImageCodec struct {
	obj arraycore.Object
}

// codecData is the payload of a codec record.
type codecData struct {
	name       string
	mimeType   string
	extensions []string
	match      func(data []byte) bool
	decode     func(r io.Reader) (image.Image, error)
	encode     func(w io.Writer, m image.Image) error
}

func (d *codecData) EqualPayload(other any) bool {
	o, _ := other.(*codecData)
	return o != nil && o.name == d.name
}

func newImageCodec(d *codecData) ImageCodec {
	return ImageCodec{obj: arraycore.NewObject(arraycore.TagImageCodec, d)}
}

func (c *ImageCodec) data() *codecData {
	d, _ := c.obj.Payload().(*codecData)
	return d
}

// Name returns the format name, such as "PNG". Empty for a zero codec.
func (c *ImageCodec) Name() string {
	if d := c.data(); d != nil {
		return d.name
	}
	return ""
}

// MimeType returns the media type of the format.
func (c *ImageCodec) MimeType() string {
	if d := c.data(); d != nil {
		return d.mimeType
	}
	return ""
}

// Extensions returns the file extensions of the format, without dots.
func (c *ImageCodec) Extensions() []string {
	if d := c.data(); d != nil {
		return slices.Clone(d.extensions)
	}
	return nil
}

// CanEncode reports whether the codec can write images.
func (c *ImageCodec) CanEncode() bool {
	d := c.data()
	return d != nil && d.encode != nil
}

// Inspect reports whether data starts with the format's signature.
func (c *ImageCodec) Inspect(data []byte) bool {
	d := c.data()
	return d != nil && d.match(data)
}

// Decode decodes an image from data.
func (c *ImageCodec) Decode(data []byte) (Image, error) {
	d := c.data()
	if d == nil {
		return Image{}, ErrCodecNotFound
	}
	m, err := d.decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("blend: decode %s: %w", d.name, err)
	}
	return ImageFromStd(m), nil
}

// Encode writes img to w.
func (c *ImageCodec) Encode(w io.Writer, img *Image) error {
	d := c.data()
	if d == nil {
		return ErrCodecNotFound
	}
	if d.encode == nil {
		return fmt.Errorf("blend: encode %s: %w", d.name, ErrEncoderUnavailable)
	}
	if err := d.encode(w, img.Std()); err != nil {
		return fmt.Errorf("blend: encode %s: %w", d.name, err)
	}
	return nil
}

// Clone returns a second reference to the codec.
func (c *ImageCodec) Clone() ImageCodec {
	return ImageCodec{obj: c.obj.Retain()}
}

func (c *ImageCodec) sharedClone() {}

// Reset drops c's reference.
func (c *ImageCodec) Reset() {
	c.obj.Release()
}

// Equal reports whether both codecs handle the same format.
func (c *ImageCodec) Equal(other *ImageCodec) bool {
	return c.obj.Equal(other.obj)
}

func (c ImageCodec) String() string {
	return fmt.Sprintf("ImageCodec(%s)", c.Name())
}

func prefixMatcher(prefixes ...string) func([]byte) bool {
	return func(data []byte) bool {
		for _, p := range prefixes {
			if bytes.HasPrefix(data, []byte(p)) {
				return true
			}
		}
		return false
	}
}

func matchWebP(data []byte) bool {
	return len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

var builtinCodecs = sync.OnceValue(func() []ImageCodec {
	return []ImageCodec{
		newImageCodec(&codecData{
			name:       "PNG",
			mimeType:   "image/png",
			extensions: []string{"png"},
			match:      prefixMatcher("\x89PNG\r\n\x1a\n"),
			decode:     png.Decode,
			encode:     png.Encode,
		}),
		newImageCodec(&codecData{
			name:       "JPEG",
			mimeType:   "image/jpeg",
			extensions: []string{"jpg", "jpeg", "jfif"},
			match:      prefixMatcher("\xff\xd8\xff"),
			decode:     jpeg.Decode,
			encode: func(w io.Writer, m image.Image) error {
				return jpeg.Encode(w, m, nil)
			},
		}),
		newImageCodec(&codecData{
			name:       "BMP",
			mimeType:   "image/bmp",
			extensions: []string{"bmp", "dib"},
			match:      prefixMatcher("BM"),
			decode:     bmp.Decode,
			encode:     bmp.Encode,
		}),
		newImageCodec(&codecData{
			name:       "TIFF",
			mimeType:   "image/tiff",
			extensions: []string{"tif", "tiff"},
			match:      prefixMatcher("II*\x00", "MM\x00*"),
			decode:     tiff.Decode,
			encode: func(w io.Writer, m image.Image) error {
				return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
			},
		}),
		newImageCodec(&codecData{
			name:       "WEBP",
			mimeType:   "image/webp",
			extensions: []string{"webp"},
			match:      matchWebP,
			decode:     webp.Decode,
		}),
	}
})

// BuiltinCodecs returns an array holding a reference to every built-in
// codec: PNG, JPEG, BMP, TIFF and WEBP (decode only).
func BuiltinCodecs() *ImageCodecArray {
	codecs := builtinCodecs()
	arr := new(ImageCodecArray)
	if err := arr.Resize(codecs); err != nil {
		panic(err)
	}
	return arr
}

// FindCodec returns the built-in codec with the given name or extension,
// compared case-insensitively.
func FindCodec(name string) (ImageCodec, error) {
	name = strings.TrimPrefix(strings.ToLower(name), ".")
	for i := range builtinCodecs() {
		c := &builtinCodecs()[i]
		d := c.data()
		if strings.ToLower(d.name) == name || slices.Contains(d.extensions, name) {
			return c.Clone(), nil
		}
	}
	return ImageCodec{}, fmt.Errorf("%w: %q", ErrCodecNotFound, name)
}

// DecodeImage decodes data with the first codec in codecs whose signature
// matches. A nil codecs uses the built-in codecs.
func DecodeImage(data []byte, codecs *ImageCodecArray) (Image, error) {
	var list []ImageCodec
	if codecs != nil {
		list = codecs.Slice()
	} else {
		list = builtinCodecs()
	}
	for i := range list {
		if list[i].Inspect(data) {
			return list[i].Decode(data)
		}
	}
	return Image{}, ErrCodecNotFound
}
