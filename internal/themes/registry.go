// SPDX-License-Identifier: MIT
package themes

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themekit/internal/tokens"
)

//go:embed contract.yaml
var contractSchema []byte

var colorsPath = tokens.Path{"colors"}

// BuildContract parses a schema literal and turns its colors subtree into
// colour slots. The result is checked for variable name collisions.
func BuildContract(schema []byte) (*tokens.Tree, error) {
	tree, err := tokens.ParseSchema(schema)
	if err != nil {
		return nil, err
	}
	if colors := tree.Subtree(colorsPath); colors != nil {
		tree.Set(colorsPath[0], tokens.ToContractShape(colors))
	}
	if err := tokens.CheckVarNames(tree); err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	return tree, nil
}

// Contract returns the built-in token contract.
func Contract() (*tokens.Tree, error) {
	return BuildContract(contractSchema)
}

// Assemble builds a value tree from a flat colour table and a shadow table,
// adding the mode-invariant categories unchanged. Colour failures are
// recovered and returned.
func Assemble(colors, shadows *tokens.Tree, log zerolog.Logger) (*tokens.Tree, []*tokens.ColorError) {
	enriched, errs := tokens.EnrichColors(colorsPath, colors, log)
	out := tokens.Map(
		"colors", enriched,
		"typography", TypographyTokens(),
		"shadows", shadows,
	)
	base := BaseTokens()
	for _, key := range base.Keys() {
		v, _ := base.Get(key)
		out.Set(key, v)
	}
	return out, errs
}

// Materialize returns the complete value tree for mode.
func Materialize(mode Mode, log zerolog.Logger) (*tokens.Tree, []*tokens.ColorError) {
	return Assemble(ColorTokens(mode), ShadowTokens(mode), log.With().Str("mode", string(mode)).Logger())
}

// PresetPatch returns the override for preset, rooted at the top of the tree
// but containing nothing outside colors.palette.primary.
func PresetPatch(preset Preset, log zerolog.Logger) (*tokens.Tree, []*tokens.ColorError, error) {
	g := PresetGradient(preset)
	if g == nil {
		return nil, nil, fmt.Errorf("unknown color preset %q", preset)
	}
	enriched, errs := tokens.EnrichColors(PrimaryPath, g, log.With().Str("preset", string(preset)).Logger())
	return tokens.Nest(PrimaryPath, enriched), errs, nil
}

// Registry holds the contract, one materialized tree per mode and one patch
// per preset. It is built once at startup and never mutated afterwards, so it
// is safe for concurrent readers.
type Registry struct {
	contract    *tokens.Tree
	modes       map[Mode]*tokens.Tree
	patches     map[Preset]*tokens.Tree
	resolved    map[Mode]map[Preset]*tokens.Tree
	diagnostics []*tokens.ColorError
}

// NewRegistry materializes every mode and preset against the built-in
// contract. A shape mismatch is fatal; malformed colours are not.
func NewRegistry(log zerolog.Logger) (*Registry, error) {
	contract, err := Contract()
	if err != nil {
		return nil, err
	}
	return newRegistry(contract, Materialize, log)
}

type materializeFunc func(Mode, zerolog.Logger) (*tokens.Tree, []*tokens.ColorError)

func newRegistry(contract *tokens.Tree, materialize materializeFunc, log zerolog.Logger) (*Registry, error) {
	log = log.With().Str("component", "themes").Logger()
	r := &Registry{
		contract: contract,
		modes:    make(map[Mode]*tokens.Tree),
		patches:  make(map[Preset]*tokens.Tree),
		resolved: make(map[Mode]map[Preset]*tokens.Tree),
	}

	for _, mode := range Modes() {
		tree, errs := materialize(mode, log)
		if err := tokens.CheckShape(contract, tree); err != nil {
			return nil, fmt.Errorf("materialize %s: %w", mode, err)
		}
		r.modes[mode] = tree
		r.diagnostics = append(r.diagnostics, errs...)
	}

	for _, preset := range Presets() {
		patch, errs, err := PresetPatch(preset, log)
		if err != nil {
			return nil, err
		}
		if err := tokens.CheckPartial(contract, patch); err != nil {
			return nil, fmt.Errorf("preset %s: %w", preset, err)
		}
		r.patches[preset] = patch
		r.diagnostics = append(r.diagnostics, errs...)
	}

	for mode, base := range r.modes {
		r.resolved[mode] = make(map[Preset]*tokens.Tree, len(r.patches))
		for preset, patch := range r.patches {
			r.resolved[mode][preset] = tokens.Merge(base, patch)
		}
	}

	log.Debug().
		Int("modes", len(r.modes)).
		Int("presets", len(r.patches)).
		Int("color_errors", len(r.diagnostics)).
		Msg("theme registry built")
	return r, nil
}

// Contract returns the contract tree. Callers must not modify it.
func (r *Registry) Contract() *tokens.Tree {
	return r.contract
}

// Mode returns the materialized tree for mode. Callers must not modify it.
func (r *Registry) Mode(mode Mode) *tokens.Tree {
	return r.modes[mode]
}

// Patch returns the override patch for preset. Callers must not modify it.
func (r *Registry) Patch(preset Preset) *tokens.Tree {
	return r.patches[preset]
}

// Resolve returns the effective tree for a mode and preset: the mode's base
// tree with the preset patch merged on top. This is the explicit form of the
// cascade the generated stylesheet relies on. Every combination is merged
// once at build time; callers must not modify the result.
func (r *Registry) Resolve(mode Mode, preset Preset) *tokens.Tree {
	return r.resolved[mode][preset]
}

// Diagnostics returns the colour errors recovered while building.
func (r *Registry) Diagnostics() []*tokens.ColorError {
	return r.diagnostics
}

// Value returns the string value at a dotted path in the resolved tree. For a
// colour leaf it is the colour value.
func (r *Registry) Value(mode Mode, preset Preset, path string) string {
	v, ok := r.Resolve(mode, preset).Lookup(tokens.ParsePath(path))
	if !ok {
		return ""
	}
	switch leaf := v.(type) {
	case tokens.ColorSlot:
		return leaf.Value
	case string:
		return leaf
	}
	return ""
}
