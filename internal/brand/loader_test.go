package brand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "brand-yml/errors"
)

const minimalBrand = `
color:
  palette:
    blue: "#0000ff"
  primary: blue
typography:
  link:
    color: primary
`

func writeFile(t *testing.T, path, data string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yml")
	writeFile(t, path, minimalBrand)

	b, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, b.Path)
	assert.Equal(t, "#0000ff", *b.Typography.Link.Color)
}

func TestLoadFile_Directory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFileName), minimalBrand)

	nested := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	b, err := LoadFile(nested)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ProjectFileName), b.Path)
	assert.Equal(t, "#0000ff", *b.Color.Primary)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.yml")
	writeFile(t, invalid, "color:\n  primary: secondary\n  secondary: primary\n")

	_, err = LoadFile(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrCircularReference)
	assert.Contains(t, err.Error(), invalid)

	malformed := filepath.Join(dir, "malformed.yml")
	writeFile(t, malformed, "color: [unclosed\n")

	_, err = LoadFile(malformed)
	assert.Error(t, err)
}

func TestFindProjectFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFileName), minimalBrand)

	// A directory named like the project file is skipped.
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, ProjectFileName), 0o755))

	found, err := FindProjectFile(ProjectFileName, nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ProjectFileName), found)

	// The closest file wins.
	writeFile(t, filepath.Join(root, "a", ProjectFileName), minimalBrand)

	found, err = FindProjectFile(ProjectFileName, nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", ProjectFileName), found)
}

func TestFindProjectFile_NotFound(t *testing.T) {
	_, err := FindProjectFile("_no_such_brand_file.yml", t.TempDir())
	require.Error(t, err)

	assert.ErrorIs(t, err, errUtils.ErrBrandFileNotFound)
	assert.NotEmpty(t, errUtils.Hints(err))
}

func TestWriteFile(t *testing.T) {
	b, err := Parse([]byte(fullBrand))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, WriteFile(b, path))

	reloaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, b.Color.Namespace(true).Strings(), reloaded.Color.Namespace(true).Strings())
	assert.Equal(t, *b.Typography.Link.Color, *reloaded.Typography.Link.Color)
	assert.Equal(t, b.Meta.Name.Short, reloaded.Meta.Name.Short)
	assert.Equal(t, *b.Logo.Small, *reloaded.Logo.Small)
	assert.Empty(t, reloaded.Extra)
}
