package themes

import (
	"strconv"

	"github.com/thatcatcamp/themekit/internal/tokens"
)

// BreakpointTokens are the responsive breakpoints. The utility bridge uses
// these values directly rather than through variables.
func BreakpointTokens() *tokens.Tree {
	return tokens.Map(
		"xs", "375px",
		"sm", "576px",
		"md", "768px",
		"lg", "1024px",
		"xl", "1280px",
		"2xl", "1536px",
	)
}

// BaseTokens returns the mode-invariant, non-typography categories keyed by
// their contract name, in contract order.
func BaseTokens() *tokens.Tree {
	return tokens.Map(
		"spacing", spacingTokens(),
		"borderRadius", tokens.Map(
			"none", "0px",
			"sm", "2px",
			"default", "4px",
			"md", "6px",
			"lg", "8px",
			"xl", "12px",
			"full", "9999px",
		),
		"screens", BreakpointTokens(),
		"opacity", opacityTokens(),
		"zIndex", tokens.Map(
			"appBar", "10",
			"drawer", "50",
			"nav", "20",
			"modal", "50",
			"snackbar", "50",
			"tooltip", "50",
			"scrollbar", "100",
		),
	)
}

// spacing follows a 4px grid.
func spacingTokens() *tokens.Tree {
	t := tokens.NewTree()
	for _, step := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 20, 24, 32} {
		t.Set(strconv.Itoa(step), strconv.Itoa(step*4)+"px")
	}
	return t
}

func opacityTokens() *tokens.Tree {
	t := tokens.NewTree()
	for _, step := range []int{0, 5, 10, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100} {
		t.Set(strconv.Itoa(step), strconv.Itoa(step)+"%")
	}
	t.Set("border", "20%")
	t.Set("hover", "8%")
	t.Set("selected", "16%")
	t.Set("focus", "24%")
	t.Set("disabled", "80%")
	t.Set("disabledBackground", "24%")
	return t
}
