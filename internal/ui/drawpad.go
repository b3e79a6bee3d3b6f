package ui

import (
	"image"
	"image/color"

	"digitpad/internal/drawing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

func newDrawPad(surface *drawing.Surface) *drawPad {
	pad := &drawPad{surface: surface}
	pad.ExtendBaseWidget(pad)
	return pad
}

func (p *drawPad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	pt := p.toPixel(e.Position)
	p.surface.Dot(pt)
	p.last = &pt
	p.Refresh()
}

func (p *drawPad) MouseUp(*desktop.MouseEvent) {
	p.last = nil
}

func (p *drawPad) Dragged(e *fyne.DragEvent) {
	pt := p.toPixel(e.Position)
	if p.last != nil {
		p.surface.Line(*p.last, pt)
	} else {
		p.surface.Dot(pt)
	}
	p.last = &pt
	p.Refresh()
}

func (p *drawPad) DragEnd() {
	p.last = nil
}

func (p *drawPad) clear() {
	p.surface.Clear()
	p.last = nil
	p.Refresh()
}

// toPixel maps a widget position to raster coordinates; the pad may be
// laid out larger or smaller than the raster.
func (p *drawPad) toPixel(pos fyne.Position) image.Point {
	b := p.surface.Bounds()
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return image.Pt(int(pos.X), int(pos.Y))
	}
	return image.Pt(
		int(pos.X*float32(b.Dx())/size.Width),
		int(pos.Y*float32(b.Dy())/size.Height),
	)
}

func (p *drawPad) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(p.surface.Raw())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = theme.ShadowColor()
	border.StrokeWidth = 1

	return &drawPadRenderer{pad: p, img: img, border: border}
}

func (r *drawPadRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
	r.border.Resize(size)
}

func (r *drawPadRenderer) MinSize() fyne.Size {
	b := r.pad.surface.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

func (r *drawPadRenderer) Refresh() {
	r.border.StrokeColor = theme.ShadowColor()
	r.img.Refresh()
	r.border.Refresh()
}

func (r *drawPadRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img, r.border}
}

func (r *drawPadRenderer) Destroy() {}
