package typography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportURL_V2(t *testing.T) {
	tests := []struct {
		name string
		font *HostedFont
		want string
	}{
		{
			name: "defaults",
			font: NewHostedFont(FontKindGoogle, "Roboto"),
			want: "https://fonts.googleapis.com/css2?family=Roboto%3Aital%2Cwght%400%2C400%3B0%2C700%3B1%2C400%3B1%2C700&display=auto",
		},
		{
			name: "unsorted and duplicated input",
			font: &HostedFont{
				Family: "Roboto", Version: 2, URL: GoogleFontsURL, Display: DisplayAuto,
				Weight: WeightList{700, 400, 700},
				Style:  StyleList{StyleItalic, StyleNormal, StyleItalic},
			},
			want: "https://fonts.googleapis.com/css2?family=Roboto%3Aital%2Cwght%400%2C400%3B0%2C700%3B1%2C400%3B1%2C700&display=auto",
		},
		{
			name: "weights only",
			font: &HostedFont{Family: "Open Sans", Version: 2, URL: GoogleFontsURL, Display: DisplaySwap, Weight: WeightList{300, 600}},
			want: "https://fonts.googleapis.com/css2?family=Open+Sans%3Awght%40300%3B600&display=swap",
		},
		{
			name: "styles only",
			font: &HostedFont{Family: "Lora", Version: 2, URL: GoogleFontsURL, Display: DisplayAuto, Style: StyleList{StyleItalic}},
			want: "https://fonts.googleapis.com/css2?family=Lora%3Aital%401&display=auto",
		},
		{
			name: "no axes",
			font: &HostedFont{Family: "Lora", Version: 2, URL: GoogleFontsURL, Display: DisplayAuto},
			want: "https://fonts.googleapis.com/css2?family=Lora&display=auto",
		},
		{
			name: "version above two uses css2",
			font: &HostedFont{Family: "Lora", Version: 3, URL: GoogleFontsURL, Display: DisplayAuto, Weight: WeightList{400}},
			want: "https://fonts.googleapis.com/css2?family=Lora%3Awght%40400&display=auto",
		},
		{
			name: "custom base with path",
			font: &HostedFont{Family: "Lora", Version: 2, URL: "https://cdn.example.com/fonts/", Display: DisplayAuto, Weight: WeightList{400}},
			want: "https://cdn.example.com/fonts/css2?family=Lora%3Awght%40400&display=auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.font.ImportURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportURL_V1(t *testing.T) {
	tests := []struct {
		name string
		font *HostedFont
		want string
	}{
		{
			name: "defaults",
			font: NewHostedFont(FontKindBunny, "Fira Sans"),
			want: "https://fonts.bunny.net/css?family=Fira+Sans%3A400%2C400i%2C700%2C700i&display=auto",
		},
		{
			name: "weights only",
			font: &HostedFont{Family: "Inter", Version: 1, URL: BunnyFontsURL, Display: DisplayAuto, Weight: WeightList{700, 300}},
			want: "https://fonts.bunny.net/css?family=Inter%3A300%2C700&display=auto",
		},
		{
			name: "styles only",
			font: &HostedFont{Family: "Inter", Version: 1, URL: BunnyFontsURL, Display: DisplayBlock, Style: StyleList{StyleItalic, StyleNormal}},
			want: "https://fonts.bunny.net/css?family=Inter%3Aregular%2Citalic&display=block",
		},
		{
			name: "no axes",
			font: &HostedFont{Family: "Inter", Version: 1, URL: BunnyFontsURL, Display: DisplayAuto},
			want: "https://fonts.bunny.net/css?family=Inter&display=auto",
		},
		{
			name: "google on v1",
			font: &HostedFont{Family: "Roboto", Version: 1, URL: GoogleFontsURL, Display: DisplayAuto, Weight: WeightList{400}, Style: StyleList{StyleItalic}},
			want: "https://fonts.googleapis.com/css?family=Roboto%3A400i&display=auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.font.ImportURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportURL_DoesNotReorderFont(t *testing.T) {
	f := &HostedFont{
		Family: "Roboto", Version: 2, URL: GoogleFontsURL, Display: DisplayAuto,
		Weight: WeightList{700, 400},
		Style:  StyleList{StyleItalic},
	}

	_, err := f.ImportURL()
	require.NoError(t, err)

	assert.Equal(t, WeightList{700, 400}, f.Weight)
}

func TestImportURL_InvalidBase(t *testing.T) {
	f := &HostedFont{Family: "Roboto", Version: 2, URL: "://bad", Display: DisplayAuto}

	_, err := f.ImportURL()
	assert.Error(t, err)
}
