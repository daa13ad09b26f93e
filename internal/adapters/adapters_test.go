// SPDX-License-Identifier: MIT
package adapters

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/themekit/internal/dom"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	s, err := settings.NewStore(context.Background(), settings.NewMemoryBackend(), settings.Defaults(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func newRegistry(t *testing.T) *themes.Registry {
	t.Helper()
	reg, err := themes.NewRegistry(zerolog.Nop())
	require.NoError(t, err)
	return reg
}

// fontAdapter claims the ambient font-family, standing in for a toolkit.
func fontAdapter(name, family string) Adapter {
	return AdapterFunc(func(p Props) *Node {
		return Provider(name, map[string]string{"font-family": family}, nil, p.Children)
	})
}

func TestComposeOrder(t *testing.T) {
	src := newStore(t)
	a := fontAdapter("a", "serif")
	b := fontAdapter("b", "monospace")
	content := Text("hello")

	ab := Compose(content, []Adapter{a, b}, src)
	ba := Compose(content, []Adapter{b, a}, src)

	require.Equal(t, "a", ab.Provider)
	require.True(t, ab.IsAncestor("a", "b"))
	require.False(t, ab.IsAncestor("b", "a"))
	require.True(t, ba.IsAncestor("b", "a"))

	// the inner adapter owns the ambient value
	require.Equal(t, "monospace", ab.AmbientAt("font-family"))
	require.Equal(t, "serif", ba.AmbientAt("font-family"))
	require.NotEqual(t, ab.Render(), ba.Render())
}

func TestComposePassesMode(t *testing.T) {
	src := newStore(t)
	_, _, err := src.Update(context.Background(), settings.WithMode(themes.Dark))
	require.NoError(t, err)

	var seen themes.Mode
	spy := AdapterFunc(func(p Props) *Node {
		seen = p.Mode
		return p.Children
	})
	out := Compose(Text("x"), []Adapter{spy}, src)
	require.Equal(t, themes.Dark, seen)
	require.Equal(t, "x", out.Render())
}

func TestComposeEmpty(t *testing.T) {
	content := Text("<b>")
	out := Compose(content, nil, newStore(t))
	require.Same(t, content, out)
	require.Equal(t, "&lt;b&gt;", out.Render())
}

func TestDocumentAdapterSynchronizes(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	defer a.Close()

	mode, _ := doc.Root().Attribute(themes.AttrThemeMode)
	preset, _ := doc.Root().Attribute(themes.AttrColorPalette)
	require.Equal(t, "light", mode)
	require.Equal(t, "default", preset)
	require.Equal(t, "14px", doc.Root().Style("font-size"))
	require.Equal(t, themes.FontOpenSans, doc.Body().Style("font-family"))

	ctx := context.Background()
	_, _, err := src.Update(ctx, settings.WithPreset(themes.PresetCyan))
	require.NoError(t, err)
	preset, _ = doc.Root().Attribute(themes.AttrColorPalette)
	mode, _ = doc.Root().Attribute(themes.AttrThemeMode)
	require.Equal(t, "cyan", preset)
	require.Equal(t, "light", mode)

	_, _, err = src.Update(ctx, settings.WithFont(themes.FontInter, 16))
	require.NoError(t, err)
	require.Equal(t, "16px", doc.Root().Style("font-size"))
	require.Equal(t, themes.FontInter, doc.Body().Style("font-family"))
}

func TestDocumentAdapterIdempotent(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	defer a.Close()

	ctx := context.Background()
	_, _, err := src.Update(ctx, settings.WithMode(themes.Dark))
	require.NoError(t, err)
	once := doc.Render("", "")
	writes := doc.Writes()

	_, _, err = src.Update(ctx, settings.WithMode(themes.Dark))
	require.NoError(t, err)
	a.Apply(src.Settings())

	require.Equal(t, once, doc.Render("", ""))
	require.Equal(t, writes, doc.Writes())
}

// A mode change must not rewrite the preset attribute.
func TestDocumentAdapterWritesOneAxis(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	defer a.Close()

	before := doc.Writes()
	_, _, err := src.Update(context.Background(), settings.WithMode(themes.Dark))
	require.NoError(t, err)
	require.Equal(t, before+1, doc.Writes())
}

func TestDocumentAdapterClose(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	a.Close()

	_, _, err := src.Update(context.Background(), settings.WithMode(themes.Dark))
	require.NoError(t, err)
	mode, _ := doc.Root().Attribute(themes.AttrThemeMode)
	require.Equal(t, "light", mode)
}

func TestRemovePx(t *testing.T) {
	n, err := RemovePx("8px")
	require.NoError(t, err)
	require.Equal(t, 8, n)

	n, err = RemovePx("12")
	require.NoError(t, err)
	require.Equal(t, 12, n)

	_, err = RemovePx("1.5rem")
	require.Error(t, err)
}

func TestComponentKitTheme(t *testing.T) {
	reg := newRegistry(t)
	src := newStore(t)
	kit := NewComponentKitAdapter(reg, src)

	th, err := kit.Theme(themes.Light)
	require.NoError(t, err)
	require.Equal(t, AlgorithmDefault, th.Algorithm)
	require.Equal(t, "#00A76F", th.Token.ColorPrimary)
	require.Equal(t, "#36B37E", th.Token.ColorSuccess)
	require.Equal(t, "#F9FAFB", th.Token.ColorBgLayout)
	require.Equal(t, "#FFFFFF", th.Token.ColorBgContainer)
	require.Equal(t, 4, th.Token.BorderRadius)
	require.Equal(t, 8, th.Token.BorderRadiusLG)
	require.Equal(t, 2, th.Token.BorderRadiusSM)
	require.Equal(t, 4, th.Components.Breadcrumb.SeparatorMargin)
	require.Equal(t, "transparent", th.Components.Menu.ColorFillAlter)
	require.Equal(t, "#637381", th.Components.Menu.ItemColor)
	require.Equal(t, 14, th.Token.FontSize)
	require.False(t, th.Token.Wireframe)

	_, _, err = src.Update(context.Background(), settings.WithPreset(themes.PresetCyan))
	require.NoError(t, err)
	th, err = kit.Theme(themes.Dark)
	require.NoError(t, err)
	require.Equal(t, AlgorithmDark, th.Algorithm)
	require.Equal(t, "#078DEE", th.Token.ColorPrimary)
	require.Equal(t, "#141A21", th.Token.ColorBgLayout)
}

func TestComponentKitWrap(t *testing.T) {
	reg := newRegistry(t)
	src := newStore(t)
	kit := NewComponentKitAdapter(reg, src)

	out := Compose(Text("app"), []Adapter{kit}, src)
	require.Equal(t, "component-kit", out.Provider)
	require.True(t, out.IsAncestor("component-kit", "component-kit-app"))
	require.Equal(t, themes.FontOpenSans, out.AmbientAt("font-family"))

	var th KitTheme
	require.Len(t, out.Attrs, 1)
	require.NoError(t, json.Unmarshal([]byte(out.Attrs[0].Value), &th))
	require.Equal(t, "#00A76F", th.Token.ColorPrimary)
	require.True(t, strings.Contains(out.Render(), "data-theme-config="))
}

func TestFlatten(t *testing.T) {
	hex, err := Flatten("#00A76F", "#FFFFFF")
	require.NoError(t, err)
	require.Equal(t, "#00a76f", hex)

	hex, err = Flatten("rgba(145, 158, 171, 0.08)", "#FFFFFF")
	require.NoError(t, err)
	require.Equal(t, "#f6f7f8", hex)

	_, err = Flatten("not-a-color", "#FFFFFF")
	require.Error(t, err)
}

func TestTerminalPalette(t *testing.T) {
	reg := newRegistry(t)
	src := newStore(t)
	term := NewTerminalAdapter(reg, src)

	light, err := term.Palette(themes.Light)
	require.NoError(t, err)
	dark, err := term.Palette(themes.Dark)
	require.NoError(t, err)

	require.Equal(t, "#00a76f", string(light.Primary))
	require.NotEqual(t, light.Background, dark.Background)
	for _, c := range []string{string(light.Hover), string(dark.Neutral)} {
		require.Len(t, c, 7, "translucent colour not flattened: %s", c)
	}

	out, err := term.Swatches(themes.Dark)
	require.NoError(t, err)
	require.Contains(t, out, "dark / default")
	require.Contains(t, out, "darker")
}

// The terminal and component kit adapters both draw from the same live
// settings, so changing the preset shows up in each.
func TestAdaptersFollowSettings(t *testing.T) {
	reg := newRegistry(t)
	src := newStore(t)
	kit := NewComponentKitAdapter(reg, src)
	term := NewTerminalAdapter(reg, src)

	_, _, err := src.Update(context.Background(), settings.WithPreset(themes.PresetRed))
	require.NoError(t, err)

	out := Compose(Text("x"), []Adapter{term, kit}, src)
	require.True(t, out.IsAncestor("terminal", "component-kit"))

	th, err := kit.Theme(themes.Light)
	require.NoError(t, err)
	require.Equal(t, "#FF5630", th.Token.ColorPrimary)

	pal, err := term.Palette(themes.Light)
	require.NoError(t, err)
	require.Equal(t, "#ff5630", string(pal.Primary))
}

func modePreset(m themes.Mode, p themes.Preset) settings.Patch {
	return settings.Patch{ThemeMode: &m, ThemeColorPresets: &p}
}

// flip alternates the store between {dark, cyan} and {light, default} until
// stop is closed.
func flip(t *testing.T, src *settings.Store, stop <-chan struct{}) <-chan struct{} {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := context.Background()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			p := modePreset(themes.Dark, themes.PresetCyan)
			if i%2 == 1 {
				p = modePreset(themes.Light, themes.PresetDefault)
			}
			_, _, err := src.Update(ctx, p)
			assert.NoError(t, err)
		}
	}()
	return done
}

func TestDocumentRenderNeverTorn(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	defer a.Close()

	stop := make(chan struct{})
	done := flip(t, src, stop)

	torn := 0
	for i := 0; i < 5000; i++ {
		out := doc.Render("", "")
		light := strings.Contains(out, `data-theme-mode="light" data-color-palette="default"`)
		dark := strings.Contains(out, `data-theme-mode="dark" data-color-palette="cyan"`)
		if !light && !dark {
			torn++
		}
	}
	close(stop)
	<-done

	require.Zero(t, torn, "renders mixing two settings snapshots")
}

func TestComposeUsesOneSnapshot(t *testing.T) {
	reg := newRegistry(t)
	src := newStore(t)
	kit := NewComponentKitAdapter(reg, src)

	stop := make(chan struct{})
	done := flip(t, src, stop)

	torn := 0
	for i := 0; i < 2000; i++ {
		out := Compose(Content("x"), []Adapter{kit}, src)
		var th KitTheme
		require.NoError(t, json.Unmarshal([]byte(out.Attrs[0].Value), &th))
		darkCyan := th.Algorithm == AlgorithmDark && th.Token.ColorPrimary == "#078DEE"
		lightDefault := th.Algorithm == AlgorithmDefault && th.Token.ColorPrimary == "#00A76F"
		if !darkCyan && !lightDefault {
			torn++
		}
	}
	close(stop)
	<-done

	require.Zero(t, torn, "compositions mixing two settings snapshots")
}

func TestDetachedDocumentAdapterAppliesSnapshot(t *testing.T) {
	src := newStore(t)
	doc := dom.New()
	a := NewDetachedDocumentAdapter(doc, zerolog.Nop())

	snap := settings.Defaults().Apply(modePreset(themes.Dark, themes.PresetPurple))
	out := ComposeSnapshot(Text("x"), []Adapter{a}, snap)
	require.Equal(t, "x", out.Render())

	mode, _ := doc.Root().Attribute(themes.AttrThemeMode)
	preset, _ := doc.Root().Attribute(themes.AttrColorPalette)
	require.Equal(t, "dark", mode)
	require.Equal(t, "purple", preset)

	// it does not follow the store
	_, _, err := src.Update(context.Background(), settings.WithMode(themes.Light))
	require.NoError(t, err)
	mode, _ = doc.Root().Attribute(themes.AttrThemeMode)
	require.Equal(t, "dark", mode)
}

// staleSource hands out an old snapshot from Settings but delivers a newer
// one to subscribers during Subscribe, the interleaving where a store update
// lands between subscribing and the first read.
type staleSource struct {
	old, next settings.Settings
}

func (s staleSource) Settings() settings.Settings { return s.old }

func (s staleSource) Subscribe(fn func(settings.Settings)) func() {
	fn(s.next)
	return func() {}
}

func TestDocumentAdapterKeepsNewerNotification(t *testing.T) {
	src := staleSource{
		old:  settings.Defaults(),
		next: settings.Defaults().Apply(modePreset(themes.Dark, themes.PresetRed)),
	}
	doc := dom.New()
	a := NewDocumentAdapter(doc, src, zerolog.Nop())
	defer a.Close()

	mode, _ := doc.Root().Attribute(themes.AttrThemeMode)
	preset, _ := doc.Root().Attribute(themes.AttrColorPalette)
	require.Equal(t, "dark", mode)
	require.Equal(t, "red", preset)
}
