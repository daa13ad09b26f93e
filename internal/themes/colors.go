// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/themekit/internal/tokens"

const (
	colorWhite = "#FFFFFF"
	colorBlack = "#09090B" // softened black
)

var gray = map[string]string{
	"100": "#F9FAFB",
	"200": "#F4F6F8",
	"300": "#DFE3E8",
	"400": "#C4CDD5",
	"500": "#919EAB",
	"600": "#637381",
	"700": "#454F5B",
	"800": "#1C252E",
	"900": "#141A21",
}

func grayScale() *tokens.Tree {
	t := tokens.NewTree()
	for _, step := range []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"} {
		t.Set(step, gray[step])
	}
	return t
}

func paletteColors() *tokens.Tree {
	return tokens.Map(
		"primary", PresetGradient(PresetDefault),
		"success", gradient("#D8FBDE", "#86E8AB", "#36B37E", "#1B806A", "#0A5554"),
		"warning", gradient("#FFF5CC", "#FFD666", "#FFAB00", "#B76E00", "#7A4100"),
		"error", gradient("#FFE9D5", "#FFAC82", "#FF5630", "#B71D18", "#7A0916"),
		"info", gradient("#CAFDF5", "#61F3F3", "#00B8D9", "#006C9C", "#003768"),
		"gray", grayScale(),
	)
}

func commonColors() *tokens.Tree {
	return tokens.Map("white", colorWhite, "black", colorBlack)
}

// actionColors are translucent grays for interaction states.
func actionColors() *tokens.Tree {
	return tokens.Map(
		"hover", tokens.RGBAlpha(gray["500"], 0.08),
		"selected", tokens.RGBAlpha(gray["500"], 0.16),
		"focus", tokens.RGBAlpha(gray["500"], 0.24),
		"disabled", tokens.RGBAlpha(gray["500"], 0.24),
		"active", tokens.RGBAlpha(gray["500"], 0.24),
	)
}

// ColorTokens returns the flat (un-enriched) colour table for mode.
func ColorTokens(mode Mode) *tokens.Tree {
	if mode == Dark {
		return generateDarkColors()
	}
	return generateLightColors()
}

func generateLightColors() *tokens.Tree {
	return tokens.Map(
		"palette", paletteColors(),
		"common", commonColors(),
		"action", actionColors(),
		"text", tokens.Map(
			"primary", gray["800"],
			"secondary", gray["600"],
			"disabled", gray["400"],
		),
		"background", tokens.Map(
			"default", gray["100"],
			"paper", colorWhite,
			"neutral", gray["200"],
		),
	)
}

func generateDarkColors() *tokens.Tree {
	return tokens.Map(
		"palette", paletteColors(),
		"common", commonColors(),
		"action", actionColors(),
		"text", tokens.Map(
			"primary", colorWhite,
			"secondary", gray["500"],
			"disabled", gray["600"],
		),
		"background", tokens.Map(
			"default", gray["900"],
			"paper", gray["800"],
			"neutral", tokens.RGBAlpha(gray["500"], 0.12),
		),
	)
}
