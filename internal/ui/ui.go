package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"digitpad/internal/drawing"
	"digitpad/internal/preprocess"
	"digitpad/internal/recognition"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

const (
	Title = "Digit Recognition"

	promptText = "Draw a digit and click Predict"
	blankText  = "Nothing to recognize, draw a digit first"
	noDigit    = "–"
	classCount = 10
)

func SetupWindow(fyneWindow fyne.Window, cfg *Config, recognizer Recognizer) *UI {
	surface := drawing.NewSurface(cfg.CanvasSize, cfg.BrushRadius)
	ui := &UI{
		fyneWindow: fyneWindow,
		cfg:        cfg,
		recognizer: recognizer,
		surface:    surface,
		pad:        newDrawPad(surface),
		result:     canvas.NewText(promptText, theme.ForegroundColor()),
	}
	ui.result.Alignment = fyne.TextAlignCenter

	var content fyne.CanvasObject
	if cfg.Variant == VariantProfessional {
		fyne.CurrentApp().Settings().SetTheme(proTheme{})
		content = ui.professionalLayout()
	} else {
		content = ui.minimalLayout()
	}

	ui.fyneWindow.SetContent(content)
	ui.fyneWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	ui.fyneWindow.CenterOnScreen()
	ui.bindShortcuts()

	ui.fyneWindow.SetOnClosed(func() {
		ui.saveState()
	})
	return ui
}

func (ui *UI) minimalLayout() fyne.CanvasObject {
	predictBtn := widget.NewButton("Predict", ui.predict)
	predictBtn.Importance = widget.SuccessImportance
	clearBtn := widget.NewButton("Clear", ui.clear)
	clearBtn.Importance = widget.DangerImportance

	ui.result.TextSize = 14
	ui.preview = canvas.NewImageFromImage(ui.blankPreview())
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.ScaleMode = canvas.ImageScalePixels
	side := float32(preprocess.DefaultOptions().Side * preprocess.PreviewScale)
	ui.preview.SetMinSize(fyne.NewSize(side, side))

	resultBox := container.NewStack(
		canvas.NewRectangle(theme.InputBackgroundColor()),
		container.NewPadded(ui.result),
	)

	return container.NewVBox(
		container.NewCenter(ui.pad),
		predictBtn,
		clearBtn,
		resultBox,
		container.NewCenter(ui.preview),
		widget.NewLabelWithStyle("Processed Image (28x28)", fyne.TextAlignCenter, fyne.TextStyle{}),
	)
}

func (ui *UI) professionalLayout() fyne.CanvasObject {
	title := canvas.NewText(Title, theme.ForegroundColor())
	title.TextSize = 24
	title.TextStyle = fyne.TextStyle{Bold: true}
	subtitle := widget.NewLabel("Sketch a single digit from 0 to 9. Ctrl/Cmd+Enter predicts, Esc clears.")
	header := container.NewVBox(title, subtitle, widget.NewSeparator())

	predictBtn := widget.NewButtonWithIcon("Predict", theme.ConfirmIcon(), ui.predict)
	predictBtn.Importance = widget.HighImportance
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), ui.clear)
	clearBtn.Importance = widget.DangerImportance

	padCard := widget.NewCard("Canvas", "", container.NewVBox(
		container.NewCenter(ui.pad),
		container.NewGridWithColumns(2, predictBtn, clearBtn),
	))

	ui.digit = canvas.NewText(noDigit, theme.PrimaryColor())
	ui.digit.TextSize = 72
	ui.digit.TextStyle = fyne.TextStyle{Bold: true}
	ui.digit.Alignment = fyne.TextAlignCenter
	ui.confidence = widget.NewProgressBar()

	resultCard := widget.NewCard("Prediction", "", container.NewVBox(
		ui.digit,
		ui.result,
		widget.NewLabel("Confidence"),
		ui.confidence,
	))

	rows := make([]fyne.CanvasObject, 0, 2*classCount)
	ui.classBars = make([]*widget.ProgressBar, classCount)
	for i := range ui.classBars {
		bar := widget.NewProgressBar()
		bar.TextFormatter = percentFormatter(bar)
		ui.classBars[i] = bar
		rows = append(rows, widget.NewLabelWithStyle(fmt.Sprint(i), fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}), bar)
	}
	probCard := widget.NewCard("Class probabilities", "", container.New(layout.NewFormLayout(), rows...))

	body := container.NewHBox(
		padCard,
		container.NewVBox(resultCard, probCard),
	)
	return container.NewBorder(header, nil, nil, nil, container.NewCenter(body))
}

func percentFormatter(bar *widget.ProgressBar) func() string {
	return func() string {
		return fmt.Sprintf("%.1f%%", bar.Value*100)
	}
}

func (ui *UI) predict() {
	res, err := ui.recognizer.Recognize(ui.surface.Image())
	switch {
	case errors.Is(err, preprocess.ErrBlank):
		ui.setResult(blankText, theme.ForegroundColor(), false)
		ui.resetDetails()
		return
	case err != nil:
		log.Printf("Error: %v", err)
		ui.resetDetails()
		ui.setResult("Error: "+err.Error(), theme.ErrorColor(), false)
		if ui.cfg.Variant == VariantProfessional {
			ui.notifyError(err.Error())
		}
		return
	}

	ui.setResult(res.String(), theme.PrimaryColor(), true)
	ui.showDetails(res)
}

func (ui *UI) showDetails(res *recognition.Result) {
	if ui.preview != nil {
		ui.preview.Image = preprocess.Preview(res.Input, res.Side, preprocess.PreviewScale)
		ui.preview.Refresh()
	}
	if ui.digit != nil {
		ui.digit.Text = res.Label
		ui.digit.Refresh()
		ui.confidence.SetValue(float64(res.Confidence))
		for i, bar := range ui.classBars {
			var p float32
			if i < len(res.Probabilities) {
				p = res.Probabilities[i]
			}
			bar.SetValue(float64(p))
		}
	}
}

func (ui *UI) clear() {
	ui.pad.clear()
	ui.setResult(promptText, theme.ForegroundColor(), false)
	ui.resetDetails()
}

// resetDetails drops the preview and probability readouts of the last
// prediction.
func (ui *UI) resetDetails() {
	if ui.preview != nil {
		ui.preview.Image = ui.blankPreview()
		ui.preview.Refresh()
	}
	if ui.digit != nil {
		ui.digit.Text = noDigit
		ui.digit.Refresh()
		ui.confidence.SetValue(0)
		for _, bar := range ui.classBars {
			bar.SetValue(0)
		}
	}
}

func (ui *UI) setResult(text string, c color.Color, bold bool) {
	ui.result.Text = text
	ui.result.Color = c
	ui.result.TextStyle = fyne.TextStyle{Bold: bold}
	ui.result.Refresh()
}

func (ui *UI) blankPreview() *image.NRGBA {
	side := preprocess.DefaultOptions().Side
	return preprocess.Preview(make([]float32, side*side), side, preprocess.PreviewScale)
}

func (ui *UI) saveState() {
	size := ui.fyneWindow.Canvas().Size()
	ui.cfg.WindowWidth = size.Width
	ui.cfg.WindowHeight = size.Height

	if err := SaveConfig(ui.cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}
