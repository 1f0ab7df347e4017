// Package ui draws the control overlay on top of the particle field.
// Panel rows are described by StatField values so the HUD layout lives in
// one table rather than in draw calls.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// StatField defines one label/value row of a panel.
type StatField struct {
	Label   string
	Value   func(HUDData) string
	Visible func(HUDData) bool // nil = always visible
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	WarnColor      rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	ButtonHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns a light theme matching the field's white background.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 248, G: 250, B: 252, A: 230},
		PanelBorder:    rl.Color{R: 203, G: 213, B: 225, A: 255},
		SectionHeader:  rl.Color{R: 37, G: 99, B: 235, A: 255},
		LabelColor:     rl.Color{R: 100, G: 116, B: 139, A: 255},
		ValueColor:     rl.Color{R: 15, G: 23, B: 42, A: 255},
		WarnColor:      rl.Color{R: 217, G: 119, B: 6, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     80,
		ButtonHeight:   24,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
