package adapters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// Algorithm names the component kit's built-in palette algorithm.
type Algorithm string

const (
	AlgorithmDefault Algorithm = "default"
	AlgorithmDark    Algorithm = "dark"
)

// KitToken is the component kit's global design token object.
type KitToken struct {
	ColorPrimary     string `json:"colorPrimary"`
	ColorSuccess     string `json:"colorSuccess"`
	ColorWarning     string `json:"colorWarning"`
	ColorError       string `json:"colorError"`
	ColorInfo        string `json:"colorInfo"`
	ColorBgLayout    string `json:"colorBgLayout"`
	ColorBgContainer string `json:"colorBgContainer"`
	ColorBgElevated  string `json:"colorBgElevated"`
	FontFamily       string `json:"fontFamily"`
	FontSize         int    `json:"fontSize"`
	BorderRadius     int    `json:"borderRadius"`
	BorderRadiusLG   int    `json:"borderRadiusLG"`
	BorderRadiusSM   int    `json:"borderRadiusSM"`
	Wireframe        bool   `json:"wireframe"`
}

// KitComponents holds per-component overrides.
type KitComponents struct {
	Breadcrumb struct {
		SeparatorMargin int `json:"separatorMargin"`
	} `json:"Breadcrumb"`
	Menu struct {
		ColorFillAlter string `json:"colorFillAlter"`
		ItemColor      string `json:"itemColor"`
	} `json:"Menu"`
}

// KitTheme is the configuration handed to the component kit's provider.
type KitTheme struct {
	Algorithm  Algorithm     `json:"algorithm"`
	Token      KitToken      `json:"token"`
	Components KitComponents `json:"components"`
}

// RemovePx converts a pixel length such as "8px" to its number.
func RemovePx(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0, fmt.Errorf("not a pixel length: %q", v)
	}
	return n, nil
}

// ComponentKitAdapter translates tokens into the component kit's theme
// configuration. It sets the kit's font family as an ambient property.
type ComponentKitAdapter struct {
	reg *themes.Registry
	src settings.Source
}

func NewComponentKitAdapter(reg *themes.Registry, src settings.Source) *ComponentKitAdapter {
	return &ComponentKitAdapter{reg: reg, src: src}
}

// Theme builds the kit configuration for mode from the live settings.
func (a *ComponentKitAdapter) Theme(mode themes.Mode) (KitTheme, error) {
	return a.themeFor(mode, a.src.Settings())
}

func (a *ComponentKitAdapter) themeFor(mode themes.Mode, s settings.Settings) (KitTheme, error) {
	val := func(path string) string {
		return a.reg.Value(mode, s.ThemeColorPresets, path)
	}

	var th KitTheme
	th.Algorithm = AlgorithmDefault
	if mode == themes.Dark {
		th.Algorithm = AlgorithmDark
	}

	th.Token = KitToken{
		ColorPrimary:     val("colors.palette.primary.default"),
		ColorSuccess:     val("colors.palette.success.default"),
		ColorWarning:     val("colors.palette.warning.default"),
		ColorError:       val("colors.palette.error.default"),
		ColorInfo:        val("colors.palette.info.default"),
		ColorBgLayout:    val("colors.background.default"),
		ColorBgContainer: val("colors.background.paper"),
		ColorBgElevated:  val("colors.background.default"),
		FontFamily:       s.FontFamily,
		FontSize:         s.FontSize,
		Wireframe:        false,
	}

	lengths := []struct {
		path string
		dst  *int
	}{
		{"borderRadius.default", &th.Token.BorderRadius},
		{"borderRadius.lg", &th.Token.BorderRadiusLG},
		{"borderRadius.sm", &th.Token.BorderRadiusSM},
		{"spacing.1", &th.Components.Breadcrumb.SeparatorMargin},
	}
	for _, r := range lengths {
		n, err := RemovePx(val(r.path))
		if err != nil {
			return KitTheme{}, fmt.Errorf("%s: %w", r.path, err)
		}
		*r.dst = n
	}

	th.Components.Menu.ColorFillAlter = "transparent"
	th.Components.Menu.ItemColor = val("colors.text.secondary")
	return th, nil
}

// Wrap places children inside the kit provider and its app container. The
// theme travels as JSON on the provider.
func (a *ComponentKitAdapter) Wrap(p Props) *Node {
	th, err := a.themeFor(p.Mode, p.Settings)
	if err != nil {
		return Provider("component-kit", nil, []Attr{{Name: "data-error", Value: err.Error()}}, p.Children)
	}
	data, err := json.Marshal(th)
	if err != nil {
		return Provider("component-kit", nil, []Attr{{Name: "data-error", Value: err.Error()}}, p.Children)
	}
	return Provider("component-kit",
		map[string]string{"font-family": th.Token.FontFamily},
		[]Attr{{Name: "data-theme-config", Value: string(data)}},
		Provider("component-kit-app", nil, nil, p.Children),
	)
}
