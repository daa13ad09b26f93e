package themes

import "github.com/thatcatcamp/themekit/internal/tokens"

// Font family presets selectable through settings.
const (
	FontOpenSans = "'Open Sans Variable', sans-serif"
	FontInter    = "'Inter Variable', sans-serif"
)

// TypographyTokens returns the typography table. Font sizes and line heights
// are unitless: sizes are pixel counts and line heights are multipliers.
func TypographyTokens() *tokens.Tree {
	return tokens.Map(
		"fontFamily", tokens.Map(
			"openSans", FontOpenSans,
			"inter", FontInter,
		),
		"fontSize", tokens.Map(
			"xs", "12",
			"sm", "14",
			"default", "16",
			"lg", "18",
			"xl", "20",
		),
		"fontWeight", tokens.Map(
			"light", "300",
			"normal", "400",
			"medium", "500",
			"semibold", "600",
			"bold", "700",
		),
		"lineHeight", tokens.Map(
			"none", "1",
			"tight", "1.25",
			"normal", "1.375",
			"relaxed", "1.5",
		),
	)
}
