package ui

import (
	"image"

	"digitpad/internal/drawing"
	"digitpad/internal/recognition"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Recognizer classifies the current drawing.
type Recognizer interface {
	Recognize(img image.Image) (*recognition.Result, error)
}

type UI struct {
	fyneWindow fyne.Window
	cfg        *Config
	recognizer Recognizer
	surface    *drawing.Surface
	pad        *drawPad
	result     *canvas.Text
	shortcuts  fyne.ShortcutHandler

	// minimal variant
	preview *canvas.Image

	// professional variant
	digit      *canvas.Text
	confidence *widget.ProgressBar
	classBars  []*widget.ProgressBar
}

type Config struct {
	WindowWidth   float32 `json:"window_width"`
	WindowHeight  float32 `json:"window_height"`
	Variant       string  `json:"variant"`
	ModelPath     string  `json:"model_path"`
	MetadataPath  string  `json:"metadata_path"`
	LibraryPath   string  `json:"onnxruntime_library"`
	CanvasSize    int     `json:"canvas_size"`
	BrushRadius   int     `json:"brush_radius"`
	CropToContent bool    `json:"crop_to_content"`
	PadRatio      float64 `json:"pad_ratio"`

	path string
	// onDisk holds the file contents before env overrides and defaults
	// derived from other fields.
	onDisk *Config
}

type drawPad struct {
	widget.BaseWidget
	surface *drawing.Surface
	last    *image.Point
}

type drawPadRenderer struct {
	pad    *drawPad
	img    *canvas.Image
	border *canvas.Rectangle
}

// proTheme is the dark palette of the professional variant. Anything it
// does not name falls through to the default dark theme.
type proTheme struct{}
