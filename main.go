package main

import (
	"log"

	"digitpad/internal/model"
	"digitpad/internal/recognition"
	"digitpad/internal/ui"

	"fyne.io/fyne/v2/app"
)

func main() {
	log.SetPrefix("digitpad: ")

	cfg, err := ui.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session, err := model.NewSession(cfg.ModelConfig())
	if err != nil {
		log.Fatalf("Error: model could not be loaded: %v", err)
	}
	opts := cfg.PreprocessOptions()
	opts.Side = session.Metadata.Side()
	service := recognition.NewService(session, opts)
	defer service.Close()

	digitpad := app.NewWithID("io.digitpad")
	fyneWindow := digitpad.NewWindow(ui.Title)
	ui.SetupWindow(fyneWindow, cfg, service)
	fyneWindow.ShowAndRun()
}
