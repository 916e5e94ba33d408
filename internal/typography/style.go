package typography

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/common"
)

// Style is a font style.
type Style string

const (
	StyleNormal Style = "normal"
	StyleItalic Style = "italic"
)

// ParseStyle validates s as a font style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleNormal, StyleItalic:
		return Style(s), nil
	default:
		return "", errUtils.Wrapf(errUtils.ErrInvalidFontStyle, "%q: expected normal or italic", s)
	}
}

// String returns the style name.
func (s Style) String() string {
	return string(s)
}

// UnmarshalYAML implements custom YAML unmarshaling for Style.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: style must be a string", node.Line)
	}

	res, err := ParseStyle(node.Value)
	if err != nil {
		return err
	}

	*s = res

	return nil
}

// StyleList is a list of font styles written either as a single style or as a
// list.
type StyleList []Style

// UnmarshalYAML implements custom YAML unmarshaling for StyleList.
// Accepts either a single style or an array of styles.
func (l *StyleList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s Style

		err := s.UnmarshalYAML(node)
		if err != nil {
			return err
		}

		*l = StyleList{s}

		return nil

	case yaml.SequenceNode:
		res := make(StyleList, 0, len(node.Content))

		for _, item := range node.Content {
			var s Style

			err := s.UnmarshalYAML(item)
			if err != nil {
				return err
			}

			res = append(res, s)
		}

		*l = res

		return nil

	default:
		return fmt.Errorf("line %d: expected style or array of styles, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StyleList.
// Outputs a single string if length is 1, otherwise an array.
func (l StyleList) MarshalYAML() (any, error) {
	if common.IsSingle(l) {
		return string(l[0]), nil
	}

	res := make([]string, len(l))
	for i, s := range l {
		res[i] = string(s)
	}

	return res, nil
}

// Contains returns true if the list holds style s.
func (l StyleList) Contains(s Style) bool {
	return slices.Contains(l, s)
}

// Display is the font-display strategy requested from a hosted font service.
type Display string

const (
	DisplayAuto     Display = "auto"
	DisplayBlock    Display = "block"
	DisplaySwap     Display = "swap"
	DisplayFallback Display = "fallback"
	DisplayOptional Display = "optional"
)

// ParseDisplay validates s as a font-display value.
func ParseDisplay(s string) (Display, error) {
	switch Display(s) {
	case DisplayAuto, DisplayBlock, DisplaySwap, DisplayFallback, DisplayOptional:
		return Display(s), nil
	default:
		return "", errUtils.Wrapf(errUtils.ErrInvalidFontDisplay,
			"%q: expected auto, block, swap, fallback or optional", s)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Display.
func (d *Display) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: display must be a string", node.Line)
	}

	res, err := ParseDisplay(node.Value)
	if err != nil {
		return err
	}

	*d = res

	return nil
}
