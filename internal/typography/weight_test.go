package typography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Weight
	}{
		{"normal token kept", "normal", WeightNormal},
		{"bold token kept", "bold", WeightBold},
		{"thin", "thin", Weight{Value: 100}},
		{"extra-light", "extra-light", Weight{Value: 200}},
		{"ultra-light", "ultra-light", Weight{Value: 200}},
		{"light", "light", Weight{Value: 300}},
		{"regular", "regular", Weight{Value: 400}},
		{"medium", "medium", Weight{Value: 500}},
		{"semi-bold", "semi-bold", Weight{Value: 600}},
		{"demi-bold", "demi-bold", Weight{Value: 600}},
		{"extra-bold", "extra-bold", Weight{Value: 800}},
		{"ultra-bold", "ultra-bold", Weight{Value: 800}},
		{"black", "black", Weight{Value: 900}},
		{"int", 300, Weight{Value: 300}},
		{"numeric string", "600", Weight{Value: 600}},
		{"integral float", 500.0, Weight{Value: 500}},
		{"int64", int64(900), Weight{Value: 900}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeight(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeight_Invalid(t *testing.T) {
	for _, input := range []any{150, 0, 1000, 50, "heavy", "", 400.5, true, nil, []int{400}} {
		_, err := ParseWeight(input)
		require.Error(t, err, "input %#v", input)
		assert.ErrorIs(t, err, errUtils.ErrInvalidFontWeight)

		var typed *errUtils.InvalidFontWeightError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, input, typed.Value)
	}
}

func TestParseHostedWeight(t *testing.T) {
	got, err := ParseHostedWeight("normal")
	require.NoError(t, err)
	assert.Equal(t, 400, got)

	got, err = ParseHostedWeight("bold")
	require.NoError(t, err)
	assert.Equal(t, 700, got)

	got, err = ParseHostedWeight(WeightBold)
	require.NoError(t, err)
	assert.Equal(t, 700, got)

	_, err = ParseHostedWeight(750)
	assert.ErrorIs(t, err, errUtils.ErrInvalidFontWeight)
}

func TestWeight_String(t *testing.T) {
	assert.Equal(t, "bold", WeightBold.String())
	assert.Equal(t, "300", Weight{Value: 300}.String())
	assert.True(t, Weight{}.IsZero())
	assert.False(t, WeightNormal.IsZero())
}

func TestWeight_YAML(t *testing.T) {
	var v struct {
		A Weight `yaml:"a"`
		B Weight `yaml:"b"`
		C Weight `yaml:"c"`
	}

	err := yaml.Unmarshal([]byte("a: bold\nb: semi-bold\nc: '200'\n"), &v)
	require.NoError(t, err)

	assert.Equal(t, WeightBold, v.A)
	assert.Equal(t, Weight{Value: 600}, v.B)
	assert.Equal(t, Weight{Value: 200}, v.C)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "a: bold\nb: 600\nc: 200\n", string(out))

	err = yaml.Unmarshal([]byte("a: 250\n"), &v)
	assert.ErrorIs(t, err, errUtils.ErrInvalidFontWeight)

	err = yaml.Unmarshal([]byte("a: [400]\n"), &v)
	assert.Error(t, err)
}

func TestWeightList_YAML(t *testing.T) {
	tests := []struct {
		name string
		data string
		want WeightList
	}{
		{"single number", "w: 400\n", WeightList{400}},
		{"single keyword", "w: bold\n", WeightList{700}},
		{"list", "w: [thin, 400, '900']\n", WeightList{100, 400, 900}},
		{"empty list", "w: []\n", WeightList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				W WeightList `yaml:"w"`
			}

			err := yaml.Unmarshal([]byte(tt.data), &v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.W)
		})
	}

	var v struct {
		W WeightList `yaml:"w"`
	}

	err := yaml.Unmarshal([]byte("w: [400, 450]\n"), &v)
	assert.ErrorIs(t, err, errUtils.ErrInvalidFontWeight)
}

func TestWeightList_MarshalYAML(t *testing.T) {
	single, err := WeightList{400}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, 400, single)

	multi, err := WeightList{400, 700}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []int{400, 700}, multi)

	assert.True(t, WeightList{400, 700}.Contains(700))
	assert.False(t, WeightList{400}.Contains(700))
}
