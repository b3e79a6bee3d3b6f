package ui

import "fyne.io/fyne/v2"

func (ui *UI) notifyError(message string) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   "Digit Recognition",
		Content: message,
	})
}
