package ui

import (
	"image"
	"path/filepath"
	"strings"
	"testing"

	"digitpad/internal/model"
	"digitpad/internal/recognition"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	calls int
	err   error
}

func (s *stubClassifier) Predict(input []float32) (*model.Prediction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	probs := make([]float32, 10)
	probs[3] = 0.97
	probs[8] = 0.03
	return &model.Prediction{Digit: 3, Label: "3", Confidence: 0.97, Probabilities: probs}, nil
}

func (s *stubClassifier) Close() {}

func newTestUI(t *testing.T, variant string, classifier model.Classifier) *UI {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	cfg := DefaultConfig()
	cfg.Variant = variant
	cfg.path = filepath.Join(t.TempDir(), configFile)
	cfg.normalize()

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return SetupWindow(w, cfg, recognition.NewService(classifier, cfg.PreprocessOptions()))
}

func scribble(ui *UI) {
	ui.pad.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(140, 60)},
		Button:     desktop.MouseButtonPrimary,
	})
	ui.pad.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(140, 220)},
		Dragged:    fyne.NewDelta(0, 160),
	})
	ui.pad.DragEnd()
}

func TestMinimalPredict(t *testing.T) {
	stub := &stubClassifier{}
	ui := newTestUI(t, VariantMinimal, stub)
	require.NotNil(t, ui.preview)
	assert.Nil(t, ui.digit)
	assert.Equal(t, promptText, ui.result.Text)

	scribble(ui)
	require.True(t, ui.surface.HasInk())

	ui.predict()
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Predicted: 3 (Confidence: 97.0%)", ui.result.Text)
	assert.True(t, ui.result.TextStyle.Bold)
	assert.Equal(t, theme.PrimaryColor(), ui.result.Color)
	assert.Equal(t, 140, ui.preview.Image.Bounds().Dx())
}

func TestPredictBlankCanvas(t *testing.T) {
	stub := &stubClassifier{}
	ui := newTestUI(t, VariantMinimal, stub)

	ui.predict()
	assert.Zero(t, stub.calls)
	assert.Equal(t, blankText, ui.result.Text)
}

func TestPredictError(t *testing.T) {
	stub := &stubClassifier{err: errors.New("session closed")}
	ui := newTestUI(t, VariantMinimal, stub)

	scribble(ui)
	ui.predict()
	assert.True(t, strings.HasPrefix(ui.result.Text, "Error: "))
	assert.Contains(t, ui.result.Text, "session closed")
	assert.Equal(t, theme.ErrorColor(), ui.result.Color)
}

func TestProfessionalPredictErrorDropsStaleResult(t *testing.T) {
	stub := &stubClassifier{}
	ui := newTestUI(t, VariantProfessional, stub)
	scribble(ui)
	ui.predict()
	require.Equal(t, "3", ui.digit.Text)

	stub.err = errors.New("session closed")
	ui.predict()
	assert.True(t, strings.HasPrefix(ui.result.Text, "Error: "))
	assert.Equal(t, noDigit, ui.digit.Text)
	assert.Zero(t, ui.confidence.Value)
	for _, bar := range ui.classBars {
		assert.Zero(t, bar.Value)
	}
}

func TestMinimalPredictBlankDropsPreview(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	scribble(ui)
	ui.predict()

	ui.pad.clear()
	ui.predict()
	assert.Equal(t, blankText, ui.result.Text)
	assert.Equal(t, uint8(0), ui.preview.Image.(*image.NRGBA).NRGBAAt(70, 70).R)
}

func TestClearResetsEverything(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	scribble(ui)
	ui.predict()

	ui.clear()
	assert.False(t, ui.surface.HasInk())
	assert.Nil(t, ui.pad.last)
	assert.Equal(t, promptText, ui.result.Text)
	assert.False(t, ui.result.TextStyle.Bold)
}

func TestProfessionalPredict(t *testing.T) {
	ui := newTestUI(t, VariantProfessional, &stubClassifier{})
	require.NotNil(t, ui.digit)
	require.Len(t, ui.classBars, classCount)
	assert.Nil(t, ui.preview)

	scribble(ui)
	ui.predict()
	assert.Equal(t, "3", ui.digit.Text)
	assert.InDelta(t, 0.97, ui.confidence.Value, 1e-6)
	assert.InDelta(t, 0.97, ui.classBars[3].Value, 1e-6)
	assert.InDelta(t, 0.03, ui.classBars[8].Value, 1e-6)
	assert.Equal(t, "97.0%", ui.classBars[3].TextFormatter())

	ui.clear()
	assert.Equal(t, noDigit, ui.digit.Text)
	assert.Zero(t, ui.confidence.Value)
	assert.Zero(t, ui.classBars[3].Value)
}

func TestDrawPadScalesPositions(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	ui.pad.Resize(fyne.NewSize(560, 560))

	pt := ui.pad.toPixel(fyne.NewPos(280, 100))
	assert.Equal(t, 140, pt.X)
	assert.Equal(t, 50, pt.Y)
}

func TestDrawPadIgnoresSecondaryButton(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	ui.pad.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.False(t, ui.surface.HasInk())
}

func TestSaveStateOnClose(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	ui.saveState()

	require.FileExists(t, ui.cfg.path)
	cfg, err := LoadConfigFrom(ui.cfg.path)
	require.NoError(t, err)
	assert.Greater(t, cfg.WindowWidth, float32(0))
	assert.Equal(t, VariantMinimal, cfg.Variant)
}

func TestProTheme(t *testing.T) {
	th := proTheme{}
	assert.Equal(t, proAccent, th.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.Equal(t, proBackground, th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.NotNil(t, th.Color(theme.ColorNameShadow, theme.VariantLight))
	assert.Equal(t, float32(6), th.Size(theme.SizeNamePadding))
	assert.NotNil(t, th.Icon(theme.IconNameConfirm))
}

func TestShortcutsPredictAndClear(t *testing.T) {
	stub := &stubClassifier{}
	ui := newTestUI(t, VariantMinimal, stub)
	scribble(ui)

	ui.shortcuts.TypedShortcut(predictShortcut())
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Predicted: 3 (Confidence: 97.0%)", ui.result.Text)

	ui.shortcuts.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyBackspace, Modifier: primaryModifier()})
	assert.False(t, ui.surface.HasInk())
	assert.Equal(t, promptText, ui.result.Text)

	// an unbound combination does nothing
	scribble(ui)
	ui.shortcuts.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierAlt})
	assert.Equal(t, 1, stub.calls)
}

func TestEscapeClearsThroughCanvas(t *testing.T) {
	ui := newTestUI(t, VariantMinimal, &stubClassifier{})
	scribble(ui)
	ui.predict()

	onKey := ui.fyneWindow.Canvas().OnTypedKey()
	require.NotNil(t, onKey)
	onKey(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.True(t, ui.surface.HasInk())

	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, ui.surface.HasInk())
	assert.Equal(t, promptText, ui.result.Text)
}

func TestPrimaryModifier(t *testing.T) {
	assert.Contains(t, []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper}, primaryModifier())
}
