// SPDX-License-Identifier: MIT
package themes

import "fmt"

// Data attributes on the document root. Generated selectors and the runtime
// synchronizer both depend on these exact names.
const (
	AttrThemeMode    = "data-theme-mode"
	AttrColorPalette = "data-color-palette"
)

// Mode is the luminance mode of a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes returns every mode in emission order.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown theme mode %q", s)
}

// Preset names a primary colour gradient. Presets are a separate namespace
// from gradient step keys: PresetDefault is not the "default" step.
type Preset string

const (
	PresetDefault Preset = "default"
	PresetCyan    Preset = "cyan"
	PresetPurple  Preset = "purple"
	PresetBlue    Preset = "blue"
	PresetOrange  Preset = "orange"
	PresetRed     Preset = "red"
)

// Presets returns every preset in emission order.
func Presets() []Preset {
	return []Preset{PresetDefault, PresetCyan, PresetPurple, PresetBlue, PresetOrange, PresetRed}
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown color preset %q", s)
}
