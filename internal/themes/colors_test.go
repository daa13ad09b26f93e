package themes

import (
	"strings"
	"testing"

	"github.com/thatcatcamp/themekit/internal/tokens"
)

func TestPresetGradientExists(t *testing.T) {
	for _, p := range Presets() {
		g := PresetGradient(p)
		if g == nil {
			t.Fatalf("%s gradient not found", p)
		}
		want := []string{StepLighter, StepLight, StepDefault, StepDark, StepDarker}
		if got := g.Keys(); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s steps = %v, want %v", p, got, want)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	if PresetGradient("teal") != nil {
		t.Fatal("expected nil gradient for unknown preset")
	}
	if _, err := ParsePreset("teal"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if _, err := ParseMode("sepia"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestPresetGradientIsCopy(t *testing.T) {
	g := PresetGradient(PresetCyan)
	g.Set(StepDefault, "#000000")
	if PresetColor(PresetCyan, StepDefault) != "#078DEE" {
		t.Fatal("mutating a returned gradient changed the preset table")
	}
}

// The "default" preset and the "default" gradient step are different names
// that happen to share a spelling.
func TestDefaultPresetAndDefaultStep(t *testing.T) {
	if got := PresetColor(PresetDefault, StepDefault); got != "#00A76F" {
		t.Errorf("default preset default step = %s, want #00A76F", got)
	}
	if got := PresetColor(PresetCyan, StepDefault); got != "#078DEE" {
		t.Errorf("cyan preset default step = %s, want #078DEE", got)
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	colors := ColorTokens(Light)

	for _, p := range []string{"text.primary", "background.default", "palette.gray.500", "common.white"} {
		v, ok := colors.Lookup(tokens.ParsePath(p))
		if !ok || v == "" {
			t.Errorf("%s not generated", p)
		}
	}
}

func TestLightVsDarkColors(t *testing.T) {
	light := ColorTokens(Light)
	dark := ColorTokens(Dark)

	for _, p := range []string{"text.primary", "background.default", "background.paper"} {
		lv, _ := light.Lookup(tokens.ParsePath(p))
		dv, _ := dark.Lookup(tokens.ParsePath(p))
		if lv == dv {
			t.Errorf("%s should differ between modes, both %v", p, lv)
		}
	}

	// palettes do not depend on mode
	lv, _ := light.Lookup(tokens.ParsePath("palette.success.default"))
	dv, _ := dark.Lookup(tokens.ParsePath("palette.success.default"))
	if lv != dv {
		t.Errorf("success palette differs between modes: %v vs %v", lv, dv)
	}
}

func TestGeneratedColorsAreParsable(t *testing.T) {
	for _, mode := range Modes() {
		ColorTokens(mode).Walk(func(path tokens.Path, leaf any) {
			s, ok := leaf.(string)
			if !ok {
				t.Errorf("%s: %s is not a string", mode, path)
				return
			}
			if _, err := tokens.ParseChannel(s); err != nil {
				t.Errorf("%s: %s = %q does not parse: %v", mode, path, s, err)
			}
		})
	}
}

func TestActionColorsAreTranslucent(t *testing.T) {
	v, _ := ColorTokens(Light).Lookup(tokens.ParsePath("action.hover"))
	if v != "rgba(145, 158, 171, 0.08)" {
		t.Errorf("action.hover = %v", v)
	}
}

func TestShadowTintFollowsMode(t *testing.T) {
	light, _ := ShadowTokens(Light).Get("default")
	dark, _ := ShadowTokens(Dark).Get("default")
	if light != "0 4px 8px 0 rgba(145, 158, 171, 0.16)" {
		t.Errorf("light default shadow = %v", light)
	}
	if dark != "0 4px 8px 0 rgba(9, 9, 11, 0.16)" {
		t.Errorf("dark default shadow = %v", dark)
	}
}
