package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	proBackground = color.NRGBA{R: 0x1b, G: 0x1f, B: 0x27, A: 0xff}
	proSurface    = color.NRGBA{R: 0x26, G: 0x2b, B: 0x36, A: 0xff}
	proAccent     = color.NRGBA{R: 0x3d, G: 0x8b, B: 0xfd, A: 0xff}
	proForeground = color.NRGBA{R: 0xe8, G: 0xec, B: 0xf2, A: 0xff}
	proSuccess    = color.NRGBA{R: 0x2e, G: 0xb8, B: 0x72, A: 0xff}
	proError      = color.NRGBA{R: 0xf0, G: 0x55, B: 0x4d, A: 0xff}
)

var _ fyne.Theme = proTheme{}

func (proTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return proBackground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground:
		return proSurface
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return proAccent
	case theme.ColorNameForeground:
		return proForeground
	case theme.ColorNameSuccess:
		return proSuccess
	case theme.ColorNameError:
		return proError
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (proTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (proTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (proTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameHeadingText:
		return 26
	case theme.SizeNameInputRadius:
		return 8
	}
	return theme.DefaultTheme().Size(name)
}
