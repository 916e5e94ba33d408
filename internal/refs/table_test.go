package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTable_UnmarshalYAML_KeepsOrder(t *testing.T) {
	data := `
zeta: "#000"
alpha: zeta
mid:
  light: "#eee"
  dark: alpha
list: [alpha, "#123"]
`

	var tbl Table
	require.NoError(t, yaml.Unmarshal([]byte(data), &tbl))

	assert.Equal(t, []string{"zeta", "alpha", "mid", "list"}, tbl.Keys())

	v, ok := tbl.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "zeta", v)

	mid, ok := tbl.Get("mid")
	require.True(t, ok)
	assert.Equal(t, KindMapping, mid.Kind())
	assert.Equal(t, []string{"light", "dark"}, mid.(*Table).Keys())

	list, ok := tbl.Get("list")
	require.True(t, ok)
	assert.Equal(t, KindSequence, list.Kind())
	assert.Len(t, list.(Sequence), 2)
}

func TestTable_UnmarshalYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a mapping", `- a`},
		{"null value", "a: ~"},
		{"duplicate key", "a: x\na: y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tbl Table
			assert.Error(t, yaml.Unmarshal([]byte(tt.data), &tbl))
		})
	}
}

func TestTable_MarshalYAML(t *testing.T) {
	tbl := TableOf("b", "#bbb", "a", "b")
	tbl.Set("group", TableOf("x", "a"))

	out, err := yaml.Marshal(tbl)
	require.NoError(t, err)

	assert.Equal(t, "b: '#bbb'\na: b\ngroup:\n    x: a\n", string(out))
}

func TestTable_SetDeleteOverlay(t *testing.T) {
	tbl := TableOf("a", "1", "b", "2")
	tbl.SetString("a", "3")
	assert.Equal(t, []string{"a", "b"}, tbl.Keys())

	tbl.Delete("a")
	tbl.Delete("missing")
	assert.Equal(t, []string{"b"}, tbl.Keys())
	assert.False(t, tbl.Has("a"))

	tbl.Overlay(TableOf("b", "20", "c", "30"))
	assert.Equal(t, map[string]string{"b": "20", "c": "30"}, tbl.Strings())
}

func TestTable_CloneIsDeep(t *testing.T) {
	tbl := TableOf("a", "b", "b", "#000")
	c := tbl.Clone()

	require.NoError(t, Replace(c, c))

	v, _ := tbl.Lookup("a")
	assert.Equal(t, "b", v)

	v, _ = c.Lookup("a")
	assert.Equal(t, "#000", v)
}

func TestTable_NilSafe(t *testing.T) {
	var tbl *Table

	assert.Zero(t, tbl.Len())
	assert.Nil(t, tbl.Keys())
	assert.False(t, tbl.Has("x"))
	assert.Nil(t, tbl.Clone())

	_, ok := tbl.Lookup("x")
	assert.False(t, ok)
}
