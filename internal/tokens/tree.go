// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
)

// Tree is an ordered token tree. Keys keep their declaration order, which is
// the order used for variable emission, leaf enumeration and exports.
//
// A value stored under a key is one of:
//   - nil: a scalar placeholder (contract only)
//   - string: a concrete scalar value, or a raw colour before enrichment
//   - ColorSlot: a colour leaf
//   - *Tree: a nested group
type Tree struct {
	keys   []string
	values map[string]any
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{values: make(map[string]any)}
}

// Map builds a tree from alternating key/value arguments. It panics on an odd
// argument count or a non-string key, so it is meant for package-level literals.
func Map(kv ...any) *Tree {
	if len(kv)%2 != 0 {
		panic("tokens.Map: odd number of arguments")
	}
	t := NewTree()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("tokens.Map: key %v is not a string", kv[i]))
		}
		t.Set(key, kv[i+1])
	}
	return t
}

// Set stores value under key. Existing keys keep their position.
func (t *Tree) Set(key string, value any) *Tree {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	return t
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in declaration order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Lookup walks path from t and returns the value found there.
func (t *Tree) Lookup(path Path) (any, bool) {
	var cur any = t
	for _, seg := range path {
		sub, ok := cur.(*Tree)
		if !ok {
			return nil, false
		}
		cur, ok = sub.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Subtree returns the group at path, or nil when path is missing or a leaf.
func (t *Tree) Subtree(path Path) *Tree {
	v, ok := t.Lookup(path)
	if !ok {
		return nil
	}
	sub, _ := v.(*Tree)
	return sub
}

// Clone returns a deep copy. Leaves are values, so only groups are copied.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := NewTree()
	for _, key := range t.keys {
		v := t.values[key]
		if sub, ok := v.(*Tree); ok {
			v = sub.Clone()
		}
		out.Set(key, v)
	}
	return out
}

// Walk visits every leaf in declaration order, depth first.
func (t *Tree) Walk(fn func(path Path, leaf any)) {
	t.walk(nil, fn)
}

func (t *Tree) walk(prefix Path, fn func(Path, any)) {
	if t == nil {
		return
	}
	for _, key := range t.keys {
		path := prefix.Child(key)
		if sub, ok := t.values[key].(*Tree); ok {
			sub.walk(path, fn)
			continue
		}
		fn(path, t.values[key])
	}
}

// Nest wraps t so that it sits at path inside an otherwise empty tree.
func Nest(path Path, t *Tree) *Tree {
	out := t
	for i := len(path) - 1; i >= 0; i-- {
		out = Map(path[i], out)
	}
	return out
}

// Merge returns a copy of base with every leaf of patch written over it.
// Groups are merged recursively; on any conflict the patch wins.
func Merge(base, patch *Tree) *Tree {
	out := base.Clone()
	if out == nil {
		out = NewTree()
	}
	if patch == nil {
		return out
	}
	for _, key := range patch.keys {
		pv := patch.values[key]
		psub, pIsTree := pv.(*Tree)
		bv, _ := out.Get(key)
		bsub, bIsTree := bv.(*Tree)
		switch {
		case pIsTree && bIsTree:
			out.Set(key, Merge(bsub, psub))
		case pIsTree:
			out.Set(key, psub.Clone())
		default:
			out.Set(key, pv)
		}
	}
	return out
}
