package drawing

import (
	"image"
	"image/color"
	"math"
)

const (
	DefaultSize        = 280
	DefaultBrushRadius = 8

	paper = 255
	ink   = 0

	// pixels darker than this count as ink
	InkThreshold = 200
)

// Surface is the grayscale raster strokes are painted into. The on-screen
// pad renders straight from it, so what the user sees is what gets classified.
type Surface struct {
	img    *image.Gray
	radius int
}

func NewSurface(size, radius int) *Surface {
	if size <= 0 {
		size = DefaultSize
	}
	if radius <= 0 {
		radius = DefaultBrushRadius
	}
	s := &Surface{
		img:    image.NewGray(image.Rect(0, 0, size, size)),
		radius: radius,
	}
	s.Clear()
	return s
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *Surface) Radius() int {
	return s.radius
}

// Raw exposes the backing image for rendering. Callers must not modify it.
func (s *Surface) Raw() *image.Gray {
	return s.img
}

// Image returns a copy of the current drawing.
func (s *Surface) Image() *image.Gray {
	out := image.NewGray(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

func (s *Surface) Clear() {
	for i := range s.img.Pix {
		s.img.Pix[i] = paper
	}
}

// Dot paints a filled disk centred on p.
func (s *Surface) Dot(p image.Point) {
	r := s.radius
	area := image.Rect(p.X-r, p.Y-r, p.X+r+1, p.Y+r+1).Intersect(s.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx, dy := x-p.X, y-p.Y
			if dx*dx+dy*dy <= r*r {
				s.img.SetGray(x, y, color.Gray{Y: ink})
			}
		}
	}
}

// Line paints dots from a to b at half-radius spacing.
func (s *Surface) Line(a, b image.Point) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	dist := math.Hypot(dx, dy)
	step := math.Max(1, float64(s.radius)/2)
	n := int(math.Ceil(dist / step))
	if n == 0 {
		s.Dot(a)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		s.Dot(image.Pt(a.X+int(math.Round(dx*t)), a.Y+int(math.Round(dy*t))))
	}
}

func (s *Surface) HasInk() bool {
	for _, v := range s.img.Pix {
		if v < InkThreshold {
			return true
		}
	}
	return false
}
