package preprocess

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const PreviewScale = 5

// Preview renders a tensor as a grayscale picture, each cell blown up to a
// scale x scale block, so the user can see exactly what the model received.
func Preview(data []float32, side, scale int) *image.NRGBA {
	if side <= 0 {
		return imaging.New(0, 0, color.Black)
	}
	if scale <= 0 {
		scale = PreviewScale
	}
	small := image.NewGray(image.Rect(0, 0, side, side))
	for i := 0; i < side*side && i < len(data); i++ {
		small.Pix[i] = toByte(data[i])
	}
	return imaging.Resize(small, side*scale, side*scale, imaging.NearestNeighbor)
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}
