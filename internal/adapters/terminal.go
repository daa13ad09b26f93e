package adapters

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// Flatten composites a possibly translucent colour over an opaque background
// and returns the result as #rrggbb. Terminals have no alpha channel.
func Flatten(color, background string) (string, error) {
	fg, err := csscolorparser.Parse(color)
	if err != nil {
		return "", fmt.Errorf("flatten %q: %w", color, err)
	}
	front := colorful.Color{R: fg.R, G: fg.G, B: fg.B}
	if fg.A >= 1 {
		return front.Clamped().Hex(), nil
	}
	bg, err := csscolorparser.Parse(background)
	if err != nil {
		return "", fmt.Errorf("flatten onto %q: %w", background, err)
	}
	back := colorful.Color{R: bg.R, G: bg.G, B: bg.B}
	return back.BlendRgb(front, fg.A).Clamped().Hex(), nil
}

// TerminalPalette is a resolved theme as opaque terminal colours.
type TerminalPalette struct {
	Mode       themes.Mode
	Preset     themes.Preset
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Paper      lipgloss.Color
	Neutral    lipgloss.Color
	Hover      lipgloss.Color
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
}

// TerminalAdapter renders tokens with lipgloss styles.
type TerminalAdapter struct {
	reg *themes.Registry
	src settings.Source
}

func NewTerminalAdapter(reg *themes.Registry, src settings.Source) *TerminalAdapter {
	return &TerminalAdapter{reg: reg, src: src}
}

// Palette resolves mode and the live preset into terminal colours.
// Translucent tokens are flattened onto the page background.
func (a *TerminalAdapter) Palette(mode themes.Mode) (TerminalPalette, error) {
	return a.paletteFor(mode, a.src.Settings().ThemeColorPresets)
}

func (a *TerminalAdapter) paletteFor(mode themes.Mode, preset themes.Preset) (TerminalPalette, error) {
	bg := a.reg.Value(mode, preset, "colors.background.default")

	p := TerminalPalette{Mode: mode, Preset: preset}
	fields := []struct {
		path string
		dst  *lipgloss.Color
	}{
		{"colors.text.primary", &p.Text},
		{"colors.text.secondary", &p.Muted},
		{"colors.background.default", &p.Background},
		{"colors.background.paper", &p.Paper},
		{"colors.background.neutral", &p.Neutral},
		{"colors.action.hover", &p.Hover},
		{"colors.palette.primary.default", &p.Primary},
		{"colors.palette.success.default", &p.Success},
		{"colors.palette.warning.default", &p.Warning},
		{"colors.palette.error.default", &p.Error},
		{"colors.palette.info.default", &p.Info},
	}
	for _, f := range fields {
		hex, err := Flatten(a.reg.Value(mode, preset, f.path), bg)
		if err != nil {
			return TerminalPalette{}, fmt.Errorf("%s: %w", f.path, err)
		}
		*f.dst = lipgloss.Color(hex)
	}
	return p, nil
}

// Swatches renders every palette gradient as a row of coloured cells.
func (a *TerminalAdapter) Swatches(mode themes.Mode) (string, error) {
	pal, err := a.Palette(mode)
	if err != nil {
		return "", err
	}
	preset := pal.Preset

	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Primary)
	label := lipgloss.NewStyle().Width(9).Foreground(pal.Muted)

	rows := []string{title.Render(fmt.Sprintf("%s / %s", mode, preset))}
	for _, name := range []string{"primary", "success", "warning", "error", "info"} {
		cells := []string{label.Render(name)}
		for _, step := range []string{themes.StepLighter, themes.StepLight, themes.StepDefault, themes.StepDark, themes.StepDarker} {
			v := a.reg.Value(mode, preset, "colors.palette."+name+"."+step)
			hex, err := Flatten(v, string(pal.Background))
			if err != nil {
				return "", err
			}
			cell := lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Foreground(pal.Text).
				Padding(0, 1).
				Render(step)
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}

// Wrap sets the text and background colours as ambient properties.
func (a *TerminalAdapter) Wrap(p Props) *Node {
	pal, err := a.paletteFor(p.Mode, p.Settings.ThemeColorPresets)
	if err != nil {
		return Provider("terminal", nil, []Attr{{Name: "data-error", Value: err.Error()}}, p.Children)
	}
	return Provider("terminal", map[string]string{
		"color":            string(pal.Text),
		"background-color": string(pal.Background),
	}, nil, p.Children)
}
