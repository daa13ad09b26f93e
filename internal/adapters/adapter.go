// SPDX-License-Identifier: MIT

// Package adapters lets independent UI toolkits consume the token contract.
// Each toolkit is wrapped by an Adapter, and Compose nests them around the
// application content in caller-specified order.
package adapters

import (
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// Props is what every adapter receives. Settings is the snapshot the whole
// composition renders from; Mode is its theme mode. Adapters read preset and
// font from Settings rather than from their source so that one render never
// mixes two snapshots.
type Props struct {
	Mode     themes.Mode
	Settings settings.Settings
	Children *Node
}

// Adapter re-expresses tokens through one toolkit's own theming API.
type Adapter interface {
	Wrap(p Props) *Node
}

// AdapterFunc is a function adapter.
type AdapterFunc func(p Props) *Node

func (f AdapterFunc) Wrap(p Props) *Node { return f(p) }

// Compose nests children in adapters. The last adapter wraps children
// directly, so the first adapter in the list ends up outermost. Order is
// significant: when two adapters set the same ambient property, the inner
// one wins for the content. The settings are read once.
func Compose(children *Node, list []Adapter, src settings.Source) *Node {
	return ComposeSnapshot(children, list, src.Settings())
}

// ComposeSnapshot is Compose for a snapshot the caller already holds.
func ComposeSnapshot(children *Node, list []Adapter, snap settings.Settings) *Node {
	out := children
	for i := len(list) - 1; i >= 0; i-- {
		out = list[i].Wrap(Props{Mode: snap.ThemeMode, Settings: snap, Children: out})
	}
	return out
}
