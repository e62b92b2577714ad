// Command blenddemo renders a few frames into blend containers and writes
// the last one with a built-in image codec.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/blend"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 240, "image height")
		frames  = flag.Int("frames", 8, "number of frames to render")
		output  = flag.String("output", "demo.png", "output file; the extension picks the codec")
		verbose = flag.Bool("v", false, "log runtime activity")
	)
	flag.Parse()

	if *verbose {
		blend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	codec, err := blend.FindCodec(filepath.Ext(*output))
	if err != nil {
		log.Fatalf("Failed to pick codec: %v", err)
	}
	defer codec.Reset()

	var rendered blend.ImageArray
	defer rendered.Reset()
	for i := range *frames {
		img, err := renderFrame(*width, *height, float64(i)/float64(max(*frames, 1)))
		if err != nil {
			log.Fatalf("Failed to render frame %d: %v", i, err)
		}
		err = rendered.Push(&img)
		img.Reset()
		if err != nil {
			log.Fatalf("Failed to keep frame %d: %v", i, err)
		}
	}
	if rendered.IsEmpty() {
		log.Fatal("Nothing rendered")
	}

	last := rendered.At(rendered.Len() - 1)
	defer last.Reset()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := codec.Encode(f, &last); err != nil {
		f.Close()
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s frame to %s (%dx%d, %d frames)\n", codec.Name(), *output, *width, *height, rendered.Len())
	if st, ok := blend.RuntimeStats(); ok {
		log.Printf("Runtime: %d allocations, %d detaches, %d bytes\n", st.Allocations, st.Detaches, st.BytesAllocated)
	}
}

// renderFrame draws a background and a ring of rotated squares at phase t.
func renderFrame(w, h int, t float64) (blend.Image, error) {
	img, err := blend.NewImage(w, h)
	if err != nil {
		return blend.Image{}, err
	}
	defer img.Reset()

	dc, err := blend.NewContext(&img)
	if err != nil {
		return blend.Image{}, err
	}
	defer dc.Reset()

	drawBackground(&dc, w, h)
	if err := drawSquares(&dc, float64(w)/2, float64(h)/2, t); err != nil {
		return blend.Image{}, err
	}
	return dc.Target(), nil
}

func drawBackground(dc *blend.Context, w, h int) {
	steps := 32
	for i := range steps {
		s := float64(i) / float64(steps)
		dc.SetFillColor(color.NRGBA{
			R: uint8(25 + s*100),
			G: uint8(50 + s*75),
			B: uint8(100 + s*50),
			A: 255,
		})
		y := float64(h) * s
		dc.FillRect(0, y, float64(w), float64(h)/float64(steps)+1)
	}
}

func drawSquares(dc *blend.Context, cx, cy, t float64) error {
	for i := range 8 {
		angle := float64(i)*math.Pi/4 + t*math.Pi/2
		dc.Save()
		if err := blend.Translate(dc, cx, cy); err != nil {
			return err
		}
		if err := blend.Rotate(dc, angle); err != nil {
			return err
		}
		dc.SetFillColor(color.NRGBA{R: uint8(i * 32), G: 200, B: uint8(255 - i*32), A: 200})
		dc.FillRect(60, -10, 20, 20)
		dc.Restore()
	}
	return nil
}
