// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/themekit/internal/tokens"

// Gradient step keys shared by every palette colour.
const (
	StepLighter = "lighter"
	StepLight   = "light"
	StepDefault = "default"
	StepDark    = "dark"
	StepDarker  = "darker"
)

// PrimaryPath is the only subtree a preset may override.
var PrimaryPath = tokens.ParsePath("colors.palette.primary")

func gradient(lighter, light, def, dark, darker string) *tokens.Tree {
	return tokens.Map(
		StepLighter, lighter,
		StepLight, light,
		StepDefault, def,
		StepDark, dark,
		StepDarker, darker,
	)
}

// presetGradients holds the five-step primary gradient for each preset.
// Presets do not vary by mode.
var presetGradients = map[Preset]*tokens.Tree{
	PresetDefault: gradient("#C8FAD6", "#5BE49B", "#00A76F", "#007867", "#004B50"),
	PresetCyan:    gradient("#CCF4FE", "#68CDF9", "#078DEE", "#0351AB", "#012972"),
	PresetPurple:  gradient("#E8DAFF", "#B18AFF", "#7635dc", "#49199c", "#290966"),
	PresetBlue:    gradient("#D1E9FC", "#76B0F1", "#2065D1", "#103996", "#061B64"),
	PresetOrange:  gradient("#FEF4D4", "#FED680", "#fda92d", "#b66800", "#793900"),
	PresetRed:     gradient("#FFE4DE", "#FF8676", "#FF5630", "#B71D18", "#7A0916"),
}

// PresetGradient returns a copy of the flat gradient for p, or nil when p is
// not a known preset.
func PresetGradient(p Preset) *tokens.Tree {
	g, ok := presetGradients[p]
	if !ok {
		return nil
	}
	return g.Clone()
}

// PresetColor returns one step of a preset gradient.
func PresetColor(p Preset, step string) string {
	v, _ := presetGradients[p].Get(step)
	s, _ := v.(string)
	return s
}
