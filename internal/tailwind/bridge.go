// SPDX-License-Identifier: MIT

// Package tailwind derives utility-framework theme scales from the token
// contract. Scales reference the same custom properties the stylesheet
// declares, so utility classes follow mode and preset switches.
package tailwind

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themekit/internal/tokens"
)

const (
	// ContractDefaultKey is the variant key the contract uses for a
	// category's unsuffixed value.
	ContractDefaultKey = "default"
	// DefaultVariant is the framework's keyword for the unsuffixed value.
	DefaultVariant = "DEFAULT"
)

// VariantKey translates a contract leaf key into a scale key.
func VariantKey(key string) string {
	if key == ContractDefaultKey {
		return DefaultVariant
	}
	return key
}

type leafKind int

const (
	notLeaf leafKind = iota
	scalarLeaf
	colorLeaf
)

// kindOf reports whether every child of group is a scalar placeholder or
// every child is a colour placeholder. Mixed or nested groups are not leaves.
func kindOf(group *tokens.Tree) leafKind {
	if group.Len() == 0 {
		return notLeaf
	}
	kind := notLeaf
	for _, key := range group.Keys() {
		v, _ := group.Get(key)
		var k leafKind
		switch {
		case v == nil:
			k = scalarLeaf
		case tokens.IsColorLeaf(v):
			k = colorLeaf
		default:
			return notLeaf
		}
		if kind != notLeaf && k != kind {
			return notLeaf
		}
		kind = k
	}
	return kind
}

// Bridge answers lookups against a token contract.
type Bridge struct {
	contract *tokens.Tree
	log      zerolog.Logger
}

// New returns a bridge over contract.
func New(contract *tokens.Tree, log zerolog.Logger) *Bridge {
	return &Bridge{
		contract: contract,
		log:      log.With().Str("component", "tailwind").Logger(),
	}
}

// group resolves path to a leaf group, logging and returning notLeaf when the
// path is unknown or does not end at a leaf group.
func (b *Bridge) group(path string) (*tokens.Tree, leafKind) {
	v, ok := b.contract.Lookup(tokens.ParsePath(path))
	if !ok {
		b.log.Warn().Str("path", path).Msg("unknown contract path")
		return nil, notLeaf
	}
	group, ok := v.(*tokens.Tree)
	if !ok {
		b.log.Warn().Str("path", path).Msg("contract path is a single token, not a group")
		return nil, notLeaf
	}
	kind := kindOf(group)
	if kind == notLeaf {
		b.log.Warn().Str("path", path).Msg("contract path does not end at a leaf group")
		return nil, notLeaf
	}
	return group, kind
}

// LeafNames returns the keys of the leaf group at path in contract order.
// Unknown paths and non-leaf groups produce a diagnostic and an empty result.
func (b *Bridge) LeafNames(path string) []string {
	group, kind := b.group(path)
	if kind == notLeaf {
		return []string{}
	}
	return group.Keys()
}

// CSSVarRef returns var(--...) for a token path. The name is the one the
// stylesheet declares for the same path.
func CSSVarRef(path string) string {
	return tokens.ParsePath(path).VarRef()
}

// CreateScale maps every variant of the leaf group at path to a var()
// reference, translating the default key.
func (b *Bridge) CreateScale(path string) *tokens.Tree {
	scale := tokens.NewTree()
	base := tokens.ParsePath(path)
	for _, key := range b.LeafNames(path) {
		scale.Set(VariantKey(key), base.Child(key).VarRef())
	}
	return scale
}

// AlphaComposableRef maps every variant of the colour group at path to
// rgb(var(--...-channel)), so utilities can apply an opacity modifier at the
// point of use. Non-colour groups produce a diagnostic and an empty scale.
func (b *Bridge) AlphaComposableRef(path string) *tokens.Tree {
	scale := tokens.NewTree()
	group, kind := b.group(path)
	switch kind {
	case notLeaf:
		return scale
	case scalarLeaf:
		b.log.Warn().Str("path", path).Msg("alpha reference requested for non-color tokens")
		return scale
	}
	base := tokens.ParsePath(path)
	for _, key := range group.Keys() {
		scale.Set(VariantKey(key), ChannelRef(base.Child(key).String(), ""))
	}
	return scale
}

// ChannelRef returns rgb(var(--...-channel)) for a colour path, with an
// optional alpha component.
func ChannelRef(path, alpha string) string {
	ref := tokens.ParsePath(path).ChannelVarRef()
	if alpha == "" {
		return fmt.Sprintf("rgb(%s)", ref)
	}
	return fmt.Sprintf("rgb(%s / %s)", ref, alpha)
}
