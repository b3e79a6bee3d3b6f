// Package preprocess turns a hand-drawn raster into the normalized 28x28
// tensor the digit classifier expects.
package preprocess

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

var (
	ErrBlank   = errors.New("image contains no ink")
	ErrBadSide = errors.New("tensor side must be positive")
)

type Options struct {
	// Side of the square model input.
	Side int
	// CropToContent crops to the ink bounding box and re-centres it on a
	// padded square before resizing, the way MNIST digits were prepared.
	CropToContent bool
	// PadRatio is the margin added on each side of the cropped digit,
	// relative to its longest edge.
	PadRatio float64
	// Gray levels below InkThreshold count as ink.
	InkThreshold uint8
}

func DefaultOptions() Options {
	return Options{
		Side:          28,
		CropToContent: true,
		PadRatio:      0.2,
		InkThreshold:  200,
	}
}

// Tensor returns the image as Side*Side row-major values in [0,1] with ink
// bright on a black background.
func Tensor(img image.Image, opts Options) ([]float32, error) {
	if opts.Side <= 0 {
		return nil, ErrBadSide
	}

	src := img
	if opts.CropToContent {
		box, ok := InkBounds(img, opts.InkThreshold)
		if !ok {
			return nil, ErrBlank
		}
		src = padSquare(imaging.Crop(img, box), opts.PadRatio)
	}

	small := resize.Resize(uint(opts.Side), uint(opts.Side), src, resize.Lanczos3)
	return normalize(small), nil
}

// InkBounds reports the smallest rectangle holding every ink pixel.
func InkBounds(img image.Image, threshold uint8) (image.Rectangle, bool) {
	b := img.Bounds()
	box := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if grayAt(img, x, y) >= threshold {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				box, found = px, true
				continue
			}
			box = box.Union(px)
		}
	}
	return box, found
}

func padSquare(img image.Image, ratio float64) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	side := w
	if h > side {
		side = h
	}
	side = int(math.Round(float64(side) * (1 + 2*ratio)))
	bg := imaging.New(side, side, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.PasteCenter(bg, img)
}

func normalize(img image.Image) []float32 {
	b := img.Bounds()
	out := make([]float32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, float32(255-grayAt(img, x, y))/255)
		}
	}
	return out
}

func grayAt(img image.Image, x, y int) uint8 {
	if g, ok := img.(*image.Gray); ok {
		return g.GrayAt(x, y).Y
	}
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
