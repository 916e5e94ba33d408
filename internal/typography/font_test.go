package typography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

func parseFont(t *testing.T, data string) (Font, error) {
	t.Helper()

	var f Font

	err := yaml.Unmarshal([]byte(data), &f)

	return f, err
}

func TestClassify_RawMappings(t *testing.T) {
	tests := []struct {
		source any
		want   FontKind
	}{
		{"google", FontKindGoogle},
		{"bunny", FontKindBunny},
		{"fonts/Inter.woff2", FontKindFile},
		{"fonts/Inter.woff", FontKindFile},
		{"https://example.com/Inter.ttf", FontKindFile},
		{"Inter.otf", FontKindFile},
		{"Inter.ttc", FontKindFile},
		{"Inter.eot", FontKindFile},
		{"Inter.svgz", FontKindFile},
	}

	for _, tt := range tests {
		t.Run(tt.source.(string), func(t *testing.T) {
			got, err := Classify(map[string]any{"source": tt.source, "family": "Inter"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, input := range []any{
		map[string]any{"source": "not-a-font"},
		map[string]any{"source": "Inter.WOFF2"},
		map[string]any{"source": "adobe"},
		map[string]any{"source": 42},
		map[string]any{"family": "Inter"},
		"google",
		nil,
	} {
		_, err := Classify(input)
		require.Error(t, err, "input %#v", input)
		assert.ErrorIs(t, err, errUtils.ErrUnsupportedFontSource)
	}

	_, err := Classify(map[string]any{"source": "not-a-font"})

	var typed *errUtils.UnsupportedFontSourceError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "not-a-font", typed.Source)
}

func TestClassify_HostedWithoutService(t *testing.T) {
	for _, input := range []any{
		HostedFont{Family: "Inter"},
		&HostedFont{Family: "Inter"},
		HostedFont{Source: FontKindFile, Family: "Inter"},
	} {
		kind, err := Classify(input)
		require.Error(t, err, "input %#v", input)
		assert.ErrorIs(t, err, errUtils.ErrUnsupportedFontSource)
		assert.Zero(t, kind)
	}
}

func TestClassify_ConcreteVariants(t *testing.T) {
	bunny := NewHostedFont(FontKindBunny, "Inter")

	tests := []struct {
		name  string
		input any
		want  FontKind
	}{
		{"hosted pointer", bunny, FontKindBunny},
		{"hosted value", *NewHostedFont(FontKindGoogle, "Inter"), FontKindGoogle},
		{"file value", FileFont{Source: "a.woff2"}, FontKindFile},
		{"file pointer", &FileFont{Source: "a.woff2"}, FontKindFile},
		{"font", Font{Kind: FontKindBunny, Hosted: bunny}, FontKindBunny},
		{"font pointer", &Font{Kind: FontKindFile}, FontKindFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFontKind_String(t *testing.T) {
	assert.Equal(t, "google", FontKindGoogle.String())
	assert.Equal(t, "bunny", FontKindBunny.String())
	assert.Equal(t, "file", FontKindFile.String())
	assert.Equal(t, "FontKind(0)", FontKind(0).String())

	assert.True(t, FontKindGoogle.IsHosted())
	assert.True(t, FontKindBunny.IsHosted())
	assert.False(t, FontKindFile.IsHosted())
}

func TestFont_GoogleDefaults(t *testing.T) {
	f, err := parseFont(t, "source: google\nfamily: Roboto\n")
	require.NoError(t, err)

	require.Equal(t, FontKindGoogle, f.Kind)
	require.NotNil(t, f.Hosted)
	assert.Nil(t, f.File)

	assert.Equal(t, &HostedFont{
		Source:  FontKindGoogle,
		Family:  "Roboto",
		Weight:  WeightList{400, 700},
		Style:   StyleList{StyleNormal, StyleItalic},
		Display: DisplayAuto,
		Version: 2,
		URL:     "https://fonts.googleapis.com/",
	}, f.Hosted)
	assert.Equal(t, "Roboto", f.Family())
}

func TestFont_BunnyDefaults(t *testing.T) {
	f, err := parseFont(t, "source: bunny\nfamily: Fira Sans\nweight: [300, bold]\nstyle: italic\ndisplay: swap\n")
	require.NoError(t, err)

	require.Equal(t, FontKindBunny, f.Kind)
	assert.Equal(t, 1, f.Hosted.Version)
	assert.Equal(t, "https://fonts.bunny.net/", f.Hosted.URL)
	assert.Equal(t, WeightList{300, 700}, f.Hosted.Weight)
	assert.Equal(t, StyleList{StyleItalic}, f.Hosted.Style)
	assert.Equal(t, DisplaySwap, f.Hosted.Display)
}

func TestFont_FileDefaults(t *testing.T) {
	f, err := parseFont(t, "source: fonts/Inter-Bold.woff2\nfamily: Inter\nweight: bold\n")
	require.NoError(t, err)

	require.Equal(t, FontKindFile, f.Kind)
	assert.Nil(t, f.Hosted)
	assert.Equal(t, &FileFont{
		Source: "fonts/Inter-Bold.woff2",
		Family: "Inter",
		Weight: WeightBold,
		Style:  StyleNormal,
	}, f.File)

	format, err := f.File.Format()
	require.NoError(t, err)
	assert.Equal(t, "woff2", format)
}

func TestFont_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		sentinel error
	}{
		{"unknown source", "source: adobe\nfamily: X\n", errUtils.ErrUnsupportedFontSource},
		{"missing source", "family: X\n", errUtils.ErrUnsupportedFontSource},
		{"unknown hosted field", "source: google\nfamily: X\nsubset: latin\n", errUtils.ErrUnknownField},
		{"hosted-only field on file", "source: a.ttf\nfamily: X\ndisplay: swap\n", errUtils.ErrUnknownField},
		{"file weight list", "source: a.ttf\nfamily: X\nweight: [400]\n", nil},
		{"bad weight", "source: google\nfamily: X\nweight: 450\n", errUtils.ErrInvalidFontWeight},
		{"bad style", "source: google\nfamily: X\nstyle: oblique\n", errUtils.ErrInvalidFontStyle},
		{"bad display", "source: google\nfamily: X\ndisplay: instant\n", errUtils.ErrInvalidFontDisplay},
		{"zero version", "source: google\nfamily: X\nversion: 0\n", errUtils.ErrInvalidFontVersion},
		{"relative url", "source: google\nfamily: X\nurl: /fonts/\n", errUtils.ErrInvalidFontURL},
		{"ftp url", "source: google\nfamily: X\nurl: ftp://fonts.example.com/\n", errUtils.ErrInvalidFontURL},
		{"missing family", "source: bunny\n", errUtils.ErrMissingFontFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFont(t, tt.data)
			require.Error(t, err)

			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestFileFont_Format(t *testing.T) {
	tests := []struct {
		source string
		want   string
		format string
	}{
		{source: "a.otf", want: "opentype"},
		{source: "a.ttf", want: "truetype"},
		{source: "a.woff", want: "woff"},
		{source: "a.woff2", want: "woff2"},
		{source: "a.ttc", format: "collection"},
		{source: "a.otc", format: "collection"},
		{source: "a.eot", format: "embedded-opentype"},
		{source: "a.svg", format: "svg"},
		{source: "a.svgz", format: "svg"},
		{source: "a.TTF"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := (&FileFont{Source: tt.source}).Format()
			if tt.want != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			require.ErrorIs(t, err, errUtils.ErrUnsupportedFontFileFormat)

			var typed *errUtils.UnsupportedFontFileFormatError
			require.ErrorAs(t, err, &typed)
			assert.Equal(t, tt.source, typed.Source)
			assert.Equal(t, tt.format, typed.Format)
		})
	}
}

func TestFont_MarshalYAML(t *testing.T) {
	f, err := parseFont(t, "source: google\nfamily: Roboto\nweight: 400\n")
	require.NoError(t, err)

	out, err := yaml.Marshal(f)
	require.NoError(t, err)

	assert.Equal(t, `source: google
family: Roboto
weight: 400
style:
    - normal
    - italic
display: auto
version: 2
url: https://fonts.googleapis.com/
`, string(out))

	again, err := parseFont(t, string(out))
	require.NoError(t, err)
	assert.Equal(t, f, again)

	file, err := parseFont(t, "source: a.woff\nfamily: A\n")
	require.NoError(t, err)

	out, err = yaml.Marshal(file)
	require.NoError(t, err)
	assert.Equal(t, "source: a.woff\nfamily: A\nweight: normal\nstyle: normal\n", string(out))
}
