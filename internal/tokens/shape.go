package tokens

import (
	"fmt"
)

// ShapeError reports where a value tree departs from its contract.
type ShapeError struct {
	Path   Path
	Reason string
}

func (e *ShapeError) Error() string {
	if len(e.Path) == 0 {
		return "shape mismatch: " + e.Reason
	}
	return fmt.Sprintf("shape mismatch at %s: %s", e.Path, e.Reason)
}

// CollisionError reports two token paths that produce the same variable name.
type CollisionError struct {
	Name  string
	First Path
	Other Path
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("variable --%s produced by both %s and %s", e.Name, e.First, e.Other)
}

// CheckShape verifies that tree is a complete instantiation of contract: the
// same keys at every depth, a colour slot wherever the contract has one, a
// concrete scalar wherever the contract has a scalar placeholder.
func CheckShape(contract, tree *Tree) error {
	return checkShape(nil, contract, tree, false)
}

// CheckPartial verifies that every leaf of patch exists in contract with the
// matching kind. Keys absent from patch are allowed.
func CheckPartial(contract, patch *Tree) error {
	return checkShape(nil, contract, patch, true)
}

func checkShape(prefix Path, contract, tree *Tree, partial bool) error {
	if tree == nil {
		if partial {
			return nil
		}
		return &ShapeError{Path: prefix, Reason: "missing group"}
	}
	if !partial {
		for _, key := range contract.keys {
			if _, ok := tree.values[key]; !ok {
				return &ShapeError{Path: prefix.Child(key), Reason: "missing key"}
			}
		}
	}
	for _, key := range tree.keys {
		path := prefix.Child(key)
		want, ok := contract.values[key]
		if !ok {
			return &ShapeError{Path: path, Reason: "key not in contract"}
		}
		got := tree.values[key]
		if err := checkLeaf(path, want, got, partial); err != nil {
			return err
		}
	}
	return nil
}

func checkLeaf(path Path, want, got any, partial bool) error {
	switch w := want.(type) {
	case *Tree:
		g, ok := got.(*Tree)
		if !ok {
			return &ShapeError{Path: path, Reason: "expected a group"}
		}
		return checkShape(path, w, g, partial)
	case ColorSlot:
		if !IsColorLeaf(got) {
			return &ShapeError{Path: path, Reason: "expected a color leaf"}
		}
		if got.(ColorSlot).IsPlaceholder() {
			return &ShapeError{Path: path, Reason: "color leaf has no value"}
		}
	default:
		if _, ok := got.(string); !ok {
			return &ShapeError{Path: path, Reason: fmt.Sprintf("expected a scalar, got %T", got)}
		}
	}
	return nil
}

// CheckVarNames returns an error when two leaves of t (or a leaf and a colour
// channel companion) map to the same custom property name.
func CheckVarNames(t *Tree) error {
	seen := make(map[string]Path)
	var err error
	claim := func(name string, path Path) {
		if err != nil {
			return
		}
		if prev, ok := seen[name]; ok {
			err = &CollisionError{Name: name, First: prev, Other: path}
			return
		}
		seen[name] = path
	}
	t.Walk(func(path Path, leaf any) {
		claim(path.VarName(), path)
		if IsColorLeaf(leaf) {
			claim(path.ChannelVarName(), path)
		}
	})
	return err
}
