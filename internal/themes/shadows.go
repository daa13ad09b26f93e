package themes

import (
	"fmt"

	"github.com/thatcatcamp/themekit/internal/tokens"
)

// ShadowTokens returns the box-shadow table for mode. Elevation shadows are
// tinted with gray in light mode and with black in dark mode; the semantic
// shadows carry their palette colour in both.
func ShadowTokens(mode Mode) *tokens.Tree {
	tint := gray["500"]
	if mode == Dark {
		tint = colorBlack
	}
	a := func(color string, alpha float64) string { return tokens.RGBAlpha(color, alpha) }

	brand := func(color string) string {
		return fmt.Sprintf("0 8px 16px 0 %s", a(color, 0.24))
	}

	return tokens.Map(
		"none", "none",
		"sm", fmt.Sprintf("0 1px 2px 0 %s", a(tint, 0.16)),
		"default", fmt.Sprintf("0 4px 8px 0 %s", a(tint, 0.16)),
		"md", fmt.Sprintf("0 8px 16px 0 %s", a(tint, 0.16)),
		"lg", fmt.Sprintf("0 12px 24px 0 %s", a(tint, 0.16)),
		"xl", fmt.Sprintf("0 16px 32px 0 %s", a(tint, 0.16)),
		"2xl", fmt.Sprintf("0 20px 40px 0 %s", a(tint, 0.16)),
		"3xl", fmt.Sprintf("0 24px 48px 0 %s", a(tint, 0.16)),
		"inner", fmt.Sprintf("inset 0 2px 4px 0 %s", a(tint, 0.16)),
		"dialog", fmt.Sprintf("-40px 40px 80px -8px %s", a(colorBlack, 0.24)),
		"card", fmt.Sprintf("0 0 2px 0 %s, 0 12px 24px -4px %s", a(tint, 0.2), a(tint, 0.12)),
		"dropdown", fmt.Sprintf("0 0 2px 0 %s, -20px 20px 40px -4px %s", a(tint, 0.24), a(tint, 0.24)),
		"primary", brand(PresetColor(PresetDefault, StepDefault)),
		"info", brand("#00B8D9"),
		"success", brand("#36B37E"),
		"warning", brand("#FFAB00"),
		"error", brand("#FF5630"),
	)
}
