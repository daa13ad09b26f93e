package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSchema builds a tree from a YAML mapping, keeping key order. Null
// leaves become nil placeholders and scalars become strings. Keys may not
// contain the path separator.
func ParseSchema(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse schema: empty document")
	}
	return fromNode(nil, doc.Content[0])
}

func fromNode(prefix Path, node *yaml.Node) (*Tree, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse schema: %s (line %d): expected a mapping", prefix, node.Line)
	}
	t := NewTree()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if key == "" || strings.Contains(key, PathSeparator) {
			return nil, fmt.Errorf("parse schema: line %d: invalid key %q", keyNode.Line, key)
		}
		if _, dup := t.Get(key); dup {
			return nil, fmt.Errorf("parse schema: line %d: duplicate key %q", keyNode.Line, key)
		}
		path := prefix.Child(key)
		switch valNode.Kind {
		case yaml.MappingNode:
			sub, err := fromNode(path, valNode)
			if err != nil {
				return nil, err
			}
			t.Set(key, sub)
		case yaml.ScalarNode:
			if valNode.Tag == "!!null" {
				t.Set(key, nil)
			} else {
				t.Set(key, valNode.Value)
			}
		default:
			return nil, fmt.Errorf("parse schema: %s (line %d): unsupported node", path, valNode.Line)
		}
	}
	return t, nil
}

// MarshalYAML encodes the tree as an ordered mapping.
func (t *Tree) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if t == nil {
		return node, nil
	}
	for _, key := range t.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var valNode *yaml.Node
		switch v := t.values[key].(type) {
		case *Tree:
			n, err := v.MarshalYAML()
			if err != nil {
				return nil, err
			}
			valNode = n.(*yaml.Node)
		default:
			valNode = &yaml.Node{}
			if err := valNode.Encode(v); err != nil {
				return nil, fmt.Errorf("encode %s: %w", key, err)
			}
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// MarshalJSON encodes the tree as a JSON object in declaration order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if t != nil {
		for i, key := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			v, err := json.Marshal(t.values[key])
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", key, err)
			}
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToMap converts the tree to nested maps for encoders that do not need order.
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any, t.Len())
	if t == nil {
		return out
	}
	for _, key := range t.keys {
		switch v := t.values[key].(type) {
		case *Tree:
			out[key] = v.ToMap()
		case ColorSlot:
			out[key] = map[string]any{"value": v.Value, "channel": v.Channel}
		default:
			out[key] = v
		}
	}
	return out
}
