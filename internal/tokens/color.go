package tokens

import (
	"fmt"
	"strconv"

	"github.com/mazznoer/csscolorparser"
	"github.com/rs/zerolog"
)

// ColorSlot is a colour leaf: the colour as written plus its space-separated
// RGB triplet. The zero value is the contract placeholder.
type ColorSlot struct {
	Value   string `json:"value" yaml:"value" toml:"value"`
	Channel string `json:"channel" yaml:"channel" toml:"channel"`
	// Invalid marks a leaf whose Value could not be parsed; Channel then
	// carries the raw Value.
	Invalid bool `json:"-" yaml:"-" toml:"-"`
}

// IsPlaceholder reports whether the slot is an unfilled contract leaf.
func (c ColorSlot) IsPlaceholder() bool {
	return c.Value == "" && c.Channel == ""
}

// IsColorLeaf is the single predicate deciding whether a leaf is a colour.
// Both the contract builder and the enrichment transform produce ColorSlot
// leaves, and every consumer asks this function rather than the type.
func IsColorLeaf(v any) bool {
	_, ok := v.(ColorSlot)
	return ok
}

// ColorError reports a colour leaf that could not be parsed.
type ColorError struct {
	Path  Path
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color %q at %s: %v", e.Value, e.Path, e.Err)
}

func (e *ColorError) Unwrap() error {
	return e.Err
}

// ParseChannel returns the "R G B" triplet (0-255 integers) for any colour the
// CSS colour grammar accepts. Alpha is discarded.
func ParseChannel(s string) (string, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", err
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("%d %d %d", r, g, b), nil
}

// RGBAlpha returns color with its alpha replaced, formatted as rgba(r, g, b, a).
// On a parse failure the input is returned unchanged.
func RGBAlpha(color string, alpha float64) string {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return color
	}
	r, g, b, _ := c.RGBA255()
	if alpha >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// ToContractShape replaces every nil leaf of schema with a placeholder
// ColorSlot. Non-nil leaves pass through. schema is not modified.
func ToContractShape(schema *Tree) *Tree {
	out := NewTree()
	if schema == nil {
		return out
	}
	for _, key := range schema.keys {
		switch v := schema.values[key].(type) {
		case *Tree:
			out.Set(key, ToContractShape(v))
		case nil:
			out.Set(key, ColorSlot{})
		default:
			out.Set(key, v)
		}
	}
	return out
}

// EnrichColors turns every string leaf of t into a ColorSlot carrying the
// parsed channel. Groups recurse; other leaves pass through unchanged.
// A leaf that fails to parse is logged and returned in the error slice; it
// keeps its value, its channel degrades to the raw string, and the rest of the
// tree is still enriched. Reported paths are rooted at at, the position of t
// in the full token tree.
func EnrichColors(at Path, t *Tree, log zerolog.Logger) (*Tree, []*ColorError) {
	var errs []*ColorError
	out := enrich(at, t, log, &errs)
	return out, errs
}

func enrich(prefix Path, t *Tree, log zerolog.Logger, errs *[]*ColorError) *Tree {
	out := NewTree()
	if t == nil {
		return out
	}
	for _, key := range t.keys {
		path := prefix.Child(key)
		switch v := t.values[key].(type) {
		case *Tree:
			out.Set(key, enrich(path, v, log, errs))
		case string:
			channel, err := ParseChannel(v)
			if err != nil {
				cerr := &ColorError{Path: path, Value: v, Err: err}
				*errs = append(*errs, cerr)
				log.Warn().
					Err(err).
					Str("path", path.String()).
					Str("value", v).
					Msg("invalid color token, channel falls back to raw value")
				out.Set(key, ColorSlot{Value: v, Channel: v, Invalid: true})
				continue
			}
			out.Set(key, ColorSlot{Value: v, Channel: channel})
		default:
			out.Set(key, v)
		}
	}
	return out
}
