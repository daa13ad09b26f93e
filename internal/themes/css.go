// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/thatcatcamp/themekit/internal/tokens"
)

// Declaration is a single custom property declaration.
type Declaration struct {
	Name  string
	Value string
}

func (d Declaration) String() string {
	return fmt.Sprintf("--%s: %s;", d.Name, d.Value)
}

// ModeSelector matches the document root while mode is active.
func ModeSelector(mode Mode) string {
	return fmt.Sprintf(`:root[%s="%s"]`, AttrThemeMode, mode)
}

// PresetSelector matches the document root while preset is active. The extra
// mode attribute selector gives it higher specificity than any ModeSelector,
// so preset variables win regardless of the active mode.
func PresetSelector(preset Preset) string {
	return fmt.Sprintf(`:root[%s][%s="%s"]`, AttrThemeMode, AttrColorPalette, preset)
}

// Declarations returns the custom properties for every leaf of tree, in tree
// order. Colour leaves produce the value and its channel companion.
func Declarations(tree *tokens.Tree) []Declaration {
	var out []Declaration
	tree.Walk(func(path tokens.Path, leaf any) {
		out = appendLeaf(out, path, leaf)
	})
	return out
}

// declarationsFor walks the contract and emits the matching leaf of tree for
// each contract leaf, so output order follows the contract.
func declarationsFor(contract, tree *tokens.Tree) ([]Declaration, error) {
	var (
		out     []Declaration
		missing tokens.Path
	)
	contract.Walk(func(path tokens.Path, _ any) {
		leaf, ok := tree.Lookup(path)
		if !ok {
			if missing == nil {
				missing = path
			}
			return
		}
		out = appendLeaf(out, path, leaf)
	})
	if missing != nil {
		return nil, &tokens.ShapeError{Path: missing, Reason: "no value for contract leaf"}
	}
	return out, nil
}

func appendLeaf(out []Declaration, path tokens.Path, leaf any) []Declaration {
	switch v := leaf.(type) {
	case tokens.ColorSlot:
		return append(out,
			Declaration{Name: path.VarName(), Value: v.Value},
			Declaration{Name: path.ChannelVarName(), Value: v.Channel},
		)
	case string:
		return append(out, Declaration{Name: path.VarName(), Value: v})
	}
	return out
}

func writeRule(b *strings.Builder, selector string, decls []Declaration) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}

// GenerateCSS emits one rule per mode followed by one override rule per
// preset. Every tree is checked against the contract first; a mismatch
// returns an error instead of a partial stylesheet.
func GenerateCSS(reg *Registry) (string, error) {
	contract := reg.Contract()
	var b strings.Builder

	for _, mode := range Modes() {
		tree := reg.Mode(mode)
		if err := tokens.CheckShape(contract, tree); err != nil {
			return "", fmt.Errorf("mode %s: %w", mode, err)
		}
		decls, err := declarationsFor(contract, tree)
		if err != nil {
			return "", fmt.Errorf("mode %s: %w", mode, err)
		}
		writeRule(&b, ModeSelector(mode), decls)
		b.WriteString("\n")
	}

	for _, preset := range Presets() {
		patch := reg.Patch(preset)
		if err := tokens.CheckPartial(contract, patch); err != nil {
			return "", fmt.Errorf("preset %s: %w", preset, err)
		}
		writeRule(&b, PresetSelector(preset), Declarations(patch))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func varRef(path string) string {
	return tokens.ParsePath(path).VarRef()
}

func channelAlpha(path string, alpha string) string {
	return fmt.Sprintf("rgba(%s / %s)", tokens.ParsePath(path).ChannelVarRef(), alpha)
}

// BaseStyles returns element rules that consume the generated variables.
// Font family and size are applied inline on the document by the runtime.
func BaseStyles() string {
	return fmt.Sprintf(`/* Base element styles */
body {
  background-color: %s;
  color: %s;
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: %s;
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

button, .btn {
  background-color: %s;
  color: %s;
  border: none;
  padding: 8px 16px;
  border-radius: %s;
  cursor: pointer;
}

button:hover, .btn:hover {
  background-color: %s;
}

.card, .surface {
  background-color: %s;
  box-shadow: %s;
  border-radius: %s;
  padding: 16px;
}

input:focus, textarea:focus, select:focus {
  outline: none;
  box-shadow: 0 0 0 3px %s;
}

.text-muted, .muted {
  color: %s;
}
`,
		varRef("colors.background.default"),
		varRef("colors.text.primary"),
		varRef("colors.palette.primary.default"),
		varRef("colors.palette.primary.default"),
		varRef("colors.common.white"),
		varRef("borderRadius.default"),
		varRef("colors.palette.primary.dark"),
		varRef("colors.background.paper"),
		varRef("shadows.card"),
		varRef("borderRadius.lg"),
		channelAlpha("colors.palette.primary.default", "0.24"),
		varRef("colors.text.secondary"),
	)
}

// Stylesheet is the full stylesheet served to documents: variables then
// base element styles.
func Stylesheet(reg *Registry) (string, error) {
	vars, err := GenerateCSS(reg)
	if err != nil {
		return "", err
	}
	return vars + BaseStyles(), nil
}

// LintCSS tokenizes css and reports the first scanner error or unbalanced
// brace.
func LintCSS(css string) error {
	s := scanner.New(css)
	depth := 0
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return fmt.Errorf("css: %d unclosed block(s)", depth)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("css: line %d col %d: %s", tok.Line, tok.Column, tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth < 0 {
					return fmt.Errorf("css: line %d col %d: unexpected }", tok.Line, tok.Column)
				}
			}
		}
	}
}
