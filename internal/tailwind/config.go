package tailwind

import (
	"encoding/json"

	"github.com/thatcatcamp/themekit/internal/tokens"
)

// ContentGlobs are the source files the framework scans for class names.
var ContentGlobs = []string{"./index.html", "./src/**/*.{js,ts,jsx,tsx}"}

func withForeground(scale *tokens.Tree, foreground string) *tokens.Tree {
	return scale.Set("foreground", foreground)
}

// colors builds the extended colour table: semantic aliases first, then the
// palette scales, then base surfaces.
func (b *Bridge) colors() *tokens.Tree {
	white := ChannelRef("colors.common.white", "")
	return tokens.Map(
		"primary", withForeground(b.AlphaComposableRef("colors.palette.primary"), white),
		"destructive", withForeground(b.AlphaComposableRef("colors.palette.error"), white),
		"secondary", tokens.Map(
			DefaultVariant, ChannelRef("colors.palette.primary.default", "0.1"),
			"foreground", ChannelRef("colors.palette.primary.default", ""),
		),
		"accent", tokens.Map(
			DefaultVariant, ChannelRef("colors.background.neutral", ""),
			"foreground", ChannelRef("colors.text.primary", ""),
		),

		"success", b.AlphaComposableRef("colors.palette.success"),
		"warning", b.AlphaComposableRef("colors.palette.warning"),
		"error", b.AlphaComposableRef("colors.palette.error"),
		"info", b.AlphaComposableRef("colors.palette.info"),
		"gray", b.AlphaComposableRef("colors.palette.gray"),

		"background", tokens.Map(
			DefaultVariant, ChannelRef("colors.background.default", ""),
			"paper", ChannelRef("colors.background.paper", ""),
		),
		"foreground", ChannelRef("colors.text.primary", ""),

		"border", ChannelRef("colors.palette.gray.300", ""),
		"input", ChannelRef("colors.palette.gray.300", ""),
		"ring", ChannelRef("colors.palette.primary.default", ""),
	)
}

// BuildConfig assembles the utility framework configuration. Breakpoints are
// literal values rather than variable references since media queries cannot
// read custom properties.
func (b *Bridge) BuildConfig(screens *tokens.Tree) *tokens.Tree {
	return tokens.Map(
		"content", ContentGlobs,
		"theme", tokens.Map(
			"fontFamily", b.CreateScale("typography.fontFamily"),
			"extend", tokens.Map(
				"colors", b.colors(),
				"opacity", b.CreateScale("opacity"),
				"borderRadius", b.CreateScale("borderRadius"),
				"boxShadow", b.CreateScale("shadows"),
				"spacing", b.CreateScale("spacing"),
				"zIndex", b.CreateScale("zIndex"),
				"screens", screens.Clone(),
			),
		),
		"plugins", []string{},
	)
}

// MarshalConfig renders a configuration as indented JSON.
func MarshalConfig(cfg *tokens.Tree) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
