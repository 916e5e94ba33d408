package typography

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/common"
)

// Numeric weight bounds.
const (
	minWeight = 100
	maxWeight = 900
)

// keywordWeights maps the CSS weight keywords to their numeric values.
var keywordWeights = map[string]int{
	"thin":        100,
	"extra-light": 200,
	"ultra-light": 200,
	"light":       300,
	"normal":      400,
	"regular":     400,
	"medium":      500,
	"semi-bold":   600,
	"demi-bold":   600,
	"bold":        700,
	"extra-bold":  800,
	"ultra-bold":  800,
	"black":       900,
}

// Weight is a font weight in the simple domain: a multiple of 100 between 100
// and 900, or one of the tokens normal and bold, which are kept as written.
type Weight struct {
	// Token is "normal" or "bold" when the weight was written as that token,
	// empty otherwise.
	Token string
	// Value is the numeric weight. Tokens carry their CSS value (400, 700).
	Value int
}

// Common weights.
var (
	WeightNormal = Weight{Token: "normal", Value: 400}
	WeightBold   = Weight{Token: "bold", Value: 700}
)

// ParseWeight normalizes v into the simple weight domain. The tokens normal
// and bold are kept; any other keyword is mapped to its number; everything
// else must coerce to a valid integer weight.
func ParseWeight(v any) (Weight, error) {
	switch t := v.(type) {
	case Weight:
		return t, nil
	case *Weight:
		if t != nil {
			return *t, nil
		}
	case string:
		if t == WeightNormal.Token {
			return WeightNormal, nil
		}

		if t == WeightBold.Token {
			return WeightBold, nil
		}
	}

	n, err := ParseHostedWeight(v)
	if err != nil {
		return Weight{}, err
	}

	return Weight{Value: n}, nil
}

// ParseHostedWeight normalizes v into the numeric weight domain used by hosted
// fonts: every keyword, normal and bold included, is mapped to its number.
func ParseHostedWeight(v any) (int, error) {
	n, ok := coerceWeight(v)
	if !ok || !common.IsInRange(minWeight, n, maxWeight) || n%100 != 0 {
		return 0, &errUtils.InvalidFontWeightError{Value: v}
	}

	return n, nil
}

// coerceWeight converts keywords, integers, integral floats and decimal
// strings to an int.
func coerceWeight(v any) (int, bool) {
	switch t := v.(type) {
	case Weight:
		return t.Value, true
	case *Weight:
		if t == nil {
			return 0, false
		}

		return t.Value, true
	case string:
		if n, ok := keywordWeights[t]; ok {
			return n, true
		}

		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}

		return n, true
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint64:
		if t > math.MaxInt32 {
			return 0, false
		}

		return int(t), true
	case float32:
		return floatWeight(float64(t))
	case float64:
		return floatWeight(t)
	default:
		return 0, false
	}
}

// floatWeight accepts floats without a fractional part.
func floatWeight(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}

// String returns the token when there is one, the number otherwise.
func (w Weight) String() string {
	if w.Token != "" {
		return w.Token
	}

	return strconv.Itoa(w.Value)
}

// IsZero returns true for the zero Weight.
func (w Weight) IsZero() bool {
	return w.Token == "" && w.Value == 0
}

// --- YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Weight.
// Accepts a keyword or a number.
func (w *Weight) UnmarshalYAML(node *yaml.Node) error {
	raw, err := decodeScalar(node, "weight")
	if err != nil {
		return err
	}

	res, err := ParseWeight(raw)
	if err != nil {
		return err
	}

	*w = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for Weight.
func (w Weight) MarshalYAML() (any, error) {
	if w.Token != "" {
		return w.Token, nil
	}

	return w.Value, nil
}

// WeightList is a list of numeric weights written either as a single weight or
// as a list.
type WeightList []int

// UnmarshalYAML implements custom YAML unmarshaling for WeightList.
// Accepts either a single weight or an array of weights.
func (l *WeightList) UnmarshalYAML(node *yaml.Node) error {
	items := []*yaml.Node{node}
	if node.Kind == yaml.SequenceNode {
		items = node.Content
	}

	res := make(WeightList, 0, len(items))

	for _, item := range items {
		raw, err := decodeScalar(item, "weight")
		if err != nil {
			return err
		}

		n, err := ParseHostedWeight(raw)
		if err != nil {
			return err
		}

		res = append(res, n)
	}

	*l = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for WeightList.
// Outputs a single number if length is 1, otherwise an array.
func (l WeightList) MarshalYAML() (any, error) {
	if common.IsSingle(l) {
		return l[0], nil
	}

	return []int(l), nil
}

// Contains returns true if the list holds weight n.
func (l WeightList) Contains(n int) bool {
	return slices.Contains(l, n)
}
