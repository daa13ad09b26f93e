// Package settings owns the live theme settings: the active mode, preset and
// font. All reads and writes go through a Store.
package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// Settings is the complete settings snapshot. JSON names match the keys the
// browser store persists.
type Settings struct {
	ThemeMode         themes.Mode   `json:"themeMode" yaml:"themeMode" validate:"required,theme_mode"`
	ThemeColorPresets themes.Preset `json:"themeColorPresets" yaml:"themeColorPresets" validate:"required,theme_preset"`
	FontFamily        string        `json:"fontFamily" yaml:"fontFamily" validate:"required,max=200"`
	FontSize          int           `json:"fontSize" yaml:"fontSize" validate:"min=8,max=32"`
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		ThemeMode:         themes.Light,
		ThemeColorPresets: themes.PresetDefault,
		FontFamily:        themes.FontOpenSans,
		FontSize:          14,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	ThemeMode         *themes.Mode   `json:"themeMode,omitempty"`
	ThemeColorPresets *themes.Preset `json:"themeColorPresets,omitempty"`
	FontFamily        *string        `json:"fontFamily,omitempty"`
	FontSize          *int           `json:"fontSize,omitempty"`
}

// IsEmpty reports whether p changes nothing.
func (p Patch) IsEmpty() bool {
	return p.ThemeMode == nil && p.ThemeColorPresets == nil && p.FontFamily == nil && p.FontSize == nil
}

// WithMode returns a patch setting only the mode.
func WithMode(m themes.Mode) Patch { return Patch{ThemeMode: &m} }

// WithPreset returns a patch setting only the preset.
func WithPreset(p themes.Preset) Patch { return Patch{ThemeColorPresets: &p} }

// WithFont returns a patch setting the font family and size.
func WithFont(family string, size int) Patch {
	return Patch{FontFamily: &family, FontSize: &size}
}

// Apply merges p into s field by field.
func (s Settings) Apply(p Patch) Settings {
	if p.ThemeMode != nil {
		s.ThemeMode = *p.ThemeMode
	}
	if p.ThemeColorPresets != nil {
		s.ThemeColorPresets = *p.ThemeColorPresets
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	return s
}

// ValidationError names the first invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
		_, err := themes.ParseMode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("theme_preset", func(fl validator.FieldLevel) bool {
		_, err := themes.ParsePreset(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field of s.
func Validate(s Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "theme_mode":
		return fmt.Sprintf("unknown theme mode %q", fe.Value())
	case "theme_preset":
		return fmt.Sprintf("unknown color preset %q", fe.Value())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag()
}
