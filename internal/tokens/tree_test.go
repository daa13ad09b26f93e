package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSchemaKeepsOrder(t *testing.T) {
	schema, err := ParseSchema([]byte(`
palette:
  primary:
    lighter: ~
    light: ~
    default: ~
    dark: ~
    darker: ~
spacing:
  0: ~
  1: ~
  10: ~
  2: ~
`))
	require.NoError(t, err)
	require.Equal(t, []string{"palette", "spacing"}, schema.Keys())
	require.Equal(t, []string{"lighter", "light", "default", "dark", "darker"},
		schema.Subtree(ParsePath("palette.primary")).Keys())
	require.Equal(t, []string{"0", "1", "10", "2"}, schema.Subtree(Path{"spacing"}).Keys())

	leaf, ok := schema.Lookup(ParsePath("spacing.10"))
	require.True(t, ok)
	require.Nil(t, leaf)
}

func TestParseSchemaRejectsBadKeys(t *testing.T) {
	_, err := ParseSchema([]byte("a:\n  b.c: ~\n"))
	require.Error(t, err)

	_, err = ParseSchema([]byte("a: ~\na: ~\n"))
	require.Error(t, err)

	_, err = ParseSchema([]byte("- a\n- b\n"))
	require.Error(t, err)
}

func TestMergePatchWins(t *testing.T) {
	base := Map(
		"palette", Map(
			"primary", Map("default", "#00A76F", "dark", "#007867"),
			"success", Map("default", "#36B37E"),
		),
	)
	patch := Nest(ParsePath("palette.primary"), Map("default", "#078DEE"))

	merged := Merge(base, patch)

	v, _ := merged.Lookup(ParsePath("palette.primary.default"))
	require.Equal(t, "#078DEE", v)
	v, _ = merged.Lookup(ParsePath("palette.primary.dark"))
	require.Equal(t, "#007867", v)
	v, _ = merged.Lookup(ParsePath("palette.success.default"))
	require.Equal(t, "#36B37E", v)

	// base is untouched
	v, _ = base.Lookup(ParsePath("palette.primary.default"))
	require.Equal(t, "#00A76F", v)
}

func TestCheckShape(t *testing.T) {
	contract := Map(
		"colors", Map("white", ColorSlot{}),
		"spacing", Map("1", nil),
	)

	ok := Map(
		"colors", Map("white", ColorSlot{Value: "#fff", Channel: "255 255 255"}),
		"spacing", Map("1", "4px"),
	)
	require.NoError(t, CheckShape(contract, ok))

	missing := Map("colors", Map("white", ColorSlot{Value: "#fff", Channel: "255 255 255"}))
	err := CheckShape(contract, missing)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "spacing", shapeErr.Path.String())

	wrongKind := Map(
		"colors", Map("white", "#fff"),
		"spacing", Map("1", "4px"),
	)
	require.ErrorAs(t, CheckShape(contract, wrongKind), &shapeErr)
	require.Equal(t, "colors.white", shapeErr.Path.String())

	extra := Map(
		"colors", Map("white", ColorSlot{Value: "#fff", Channel: "255 255 255"}),
		"spacing", Map("1", "4px", "2", "8px"),
	)
	require.Error(t, CheckShape(contract, extra))

	require.NoError(t, CheckPartial(contract, Map("spacing", Map("1", "4px"))))
	require.Error(t, CheckPartial(contract, Map("spacing", Map("9", "4px"))))
}

func TestCheckVarNamesDetectsCollisions(t *testing.T) {
	require.NoError(t, CheckVarNames(Map("a", Map("b", "1"), "c", "2")))

	err := CheckVarNames(Map("a-b", "1", "a", Map("b", "2")))
	var collision *CollisionError
	require.ErrorAs(t, err, &collision)
	require.Equal(t, "a-b", collision.Name)

	// a colour's channel companion occupies a name too
	err = CheckVarNames(Map("x", ColorSlot{Value: "#000", Channel: "0 0 0"}, "x-channel", "1"))
	require.ErrorAs(t, err, &collision)
}

func TestPathNaming(t *testing.T) {
	p := ParsePath("colors.palette.primary.default")
	require.Equal(t, "colors-palette-primary-default", p.VarName())
	require.Equal(t, "colors-palette-primary-default-channel", p.ChannelVarName())
	require.Equal(t, "var(--colors-palette-primary-default)", p.VarRef())
	require.Equal(t, "var(--colors-palette-primary-default-channel)", p.ChannelVarRef())
	require.True(t, p.HasPrefix(ParsePath("colors.palette")))
	require.False(t, p.HasPrefix(ParsePath("colors.text")))
	require.Empty(t, ParsePath(""))
}

func TestTreeEncodingKeepsOrder(t *testing.T) {
	tree := Map(
		"z", "1",
		"a", ColorSlot{Value: "#000000", Channel: "0 0 0"},
		"m", Map("2", "x", "1", "y"),
	)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	require.Equal(t, `{"z":"1","a":{"value":"#000000","channel":"0 0 0"},"m":{"2":"x","1":"y"}}`, string(data))

	out, err := yaml.Marshal(tree)
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &doc))
	root := doc.Content[0]
	require.Equal(t, []string{"z", "a", "m"}, mappingKeys(root))
	require.Equal(t, []string{"2", "1"}, mappingKeys(root.Content[5]))
	require.Equal(t, []string{"value", "channel"}, mappingKeys(root.Content[3]))
}

func mappingKeys(n *yaml.Node) []string {
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}
