package ui

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func primaryModifier() fyne.KeyModifier {
	if runtime.GOOS == "darwin" {
		return fyne.KeyModifierSuper
	}
	return fyne.KeyModifierControl
}

func predictShortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: primaryModifier()}
}

func clearShortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: fyne.KeyBackspace, Modifier: primaryModifier()}
}

func (ui *UI) bindShortcuts() {
	ui.addShortcut(predictShortcut(), ui.predict)
	ui.addShortcut(clearShortcut(), ui.clear)
	ui.fyneWindow.Canvas().SetOnTypedKey(ui.typedKey)
}

// addShortcut registers on the window canvas and on ui.shortcuts, which
// mirrors the canvas table so bindings can be dispatched by name.
func (ui *UI) addShortcut(sc fyne.Shortcut, action func()) {
	handler := func(fyne.Shortcut) {
		action()
	}
	ui.shortcuts.AddShortcut(sc, handler)
	ui.fyneWindow.Canvas().AddShortcut(sc, handler)
}

func (ui *UI) typedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		ui.clear()
	}
}
