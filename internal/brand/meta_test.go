package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

func TestMeta_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantName  Name
		wantLinks map[string]string
	}{
		{
			name:      "scalars",
			data:      "name: Acme\nlink: https://acme.example\n",
			wantName:  Name{Full: "Acme"},
			wantLinks: map[string]string{"home": "https://acme.example"},
		},
		{
			name:      "mappings",
			data:      "name:\n  short: A\n  full: Acme\nlink:\n  home: https://acme.example\n  mastodon: https://mastodon.social/@acme\n",
			wantName:  Name{Short: "A", Full: "Acme"},
			wantLinks: map[string]string{"home": "https://acme.example", "mastodon": "https://mastodon.social/@acme"},
		},
		{
			name:     "no link",
			data:     "name: Acme\n",
			wantName: Name{Full: "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Meta
			require.NoError(t, yaml.Unmarshal([]byte(tt.data), &m))

			require.NotNil(t, m.Name)
			assert.Equal(t, tt.wantName, *m.Name)

			if tt.wantLinks == nil {
				assert.Nil(t, m.Link)
			} else {
				assert.Equal(t, tt.wantLinks, m.Link.Strings())
			}
		})
	}
}

func TestMeta_MarshalYAML(t *testing.T) {
	var m Meta
	require.NoError(t, yaml.Unmarshal([]byte("name: Acme\nlink: https://acme.example\n"), &m))

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, "name: Acme\nlink: https://acme.example\n", string(out))
}

func TestName_String(t *testing.T) {
	var n *Name
	assert.Empty(t, n.String())

	assert.Equal(t, "Acme", (&Name{Short: "Acme"}).String())
	assert.Equal(t, "Acme Corp", (&Name{Short: "Acme", Full: "Acme Corp"}).String())
}

func TestLogo_UnmarshalYAML(t *testing.T) {
	t.Run("single path", func(t *testing.T) {
		var l Logo
		require.NoError(t, yaml.Unmarshal([]byte("logos/brand.svg"), &l))

		assert.Equal(t, "logos/brand.svg", l.Source)
		assert.Empty(t, l.Sizes())

		out, err := yaml.Marshal(&l)
		require.NoError(t, err)
		assert.Equal(t, "logos/brand.svg\n", string(out))
	})

	t.Run("images and sizes", func(t *testing.T) {
		var l Logo
		require.NoError(t, yaml.Unmarshal([]byte(`
images:
  full: logos/full.svg
  main: full
small: main
large: logos/large.png
`), &l))

		assert.Equal(t, "logos/full.svg", *l.Small)
		assert.Nil(t, l.Medium)
		assert.Equal(t, "logos/large.png", *l.Large)

		authored, ok := l.Authored(LogoSmall)
		require.True(t, ok)
		assert.Equal(t, "main", authored)

		_, ok = l.Authored(LogoMedium)
		assert.False(t, ok)

		sizes := l.Sizes()
		require.Len(t, sizes, 2)
		assert.Equal(t, LogoSmall, sizes[0].Name)
		assert.Equal(t, LogoLarge, sizes[1].Name)
	})

	t.Run("unknown size", func(t *testing.T) {
		var l Logo
		err := yaml.Unmarshal([]byte("huge: a.png\n"), &l)
		assert.ErrorIs(t, err, errUtils.ErrUnknownField)
	})

	t.Run("self reference", func(t *testing.T) {
		var l Logo
		err := yaml.Unmarshal([]byte("images:\n  a: a\n"), &l)

		var cyc *errUtils.CircularReferenceError
		require.ErrorAs(t, err, &cyc)
		assert.Equal(t, "logo.images", cyc.Namespace)
		assert.Equal(t, []string{"a", "a"}, cyc.Path)
	})
}
