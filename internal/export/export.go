// SPDX-License-Identifier: MIT

// Package export writes resolved token trees in interchange formats.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/thatcatcamp/themekit/internal/tokens"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{JSON, YAML, TOML}
}

// ParseFormat accepts a format name in any case; "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, yaml or toml)", s)
}

// Marshal encodes tree. JSON and YAML keep declaration order; TOML tables
// are written in key order.
func Marshal(tree *tokens.Tree, f Format) ([]byte, error) {
	switch f {
	case JSON:
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case YAML:
		return yaml.Marshal(tree)
	case TOML:
		return toml.Marshal(tree.ToMap())
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}
