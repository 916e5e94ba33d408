// Package errors defines the error kinds reported while validating a brand
// document, plus a small builder for attaching user-facing hints.
//
// Every typed error matches its sentinel through errors.Is, so callers can
// either branch on the sentinel or extract details with errors.As:
//
//	var cyc *errUtils.CircularReferenceError
//	if errors.As(err, &cyc) {
//		fmt.Println(strings.Join(cyc.Path, " -> "))
//	}
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrCircularReference         = errors.New("circular reference")
	ErrUndefinedThemeReference   = errors.New("undefined theme color reference")
	ErrInvalidFontWeight         = errors.New("invalid font weight")
	ErrUnsupportedFontSource     = errors.New("unsupported font source")
	ErrUnsupportedFontFileFormat = errors.New("unsupported font file format")

	ErrInvalidFontStyle    = errors.New("invalid font style")
	ErrInvalidFontDisplay  = errors.New("invalid font display")
	ErrInvalidFontURL      = errors.New("invalid font service url")
	ErrInvalidFontVersion  = errors.New("invalid font api version")
	ErrMissingFontFamily   = errors.New("font family is required")
	ErrUnknownField        = errors.New("unknown field")
	ErrUnresolvedReference = errors.New("reference did not resolve to a literal")
	ErrInvalidDocument     = errors.New("invalid brand document")
	ErrBrandFileNotFound   = errors.New("brand file not found")
)

// CircularReferenceError reports a reference chain that returns to a key it
// already visited. Path lists the keys in visiting order and ends with the
// repeated key.
type CircularReferenceError struct {
	Namespace string
	Path      []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("%s in %s: %s", ErrCircularReference, e.Namespace, strings.Join(e.Path, " -> "))
}

func (e *CircularReferenceError) Is(target error) bool {
	return target == ErrCircularReference
}

// UndefinedThemeReferenceError reports a typography color that names a theme
// slot which was never given a value.
type UndefinedThemeReferenceError struct {
	Group string
	Field string
	Slot  string
}

func (e *UndefinedThemeReferenceError) Error() string {
	return fmt.Sprintf("%s: typography.%s.%s refers to color.%s, which is not defined",
		ErrUndefinedThemeReference, e.Group, e.Field, e.Slot)
}

func (e *UndefinedThemeReferenceError) Is(target error) bool {
	return target == ErrUndefinedThemeReference
}

// InvalidFontWeightError reports a weight outside the keyword/numeric domain.
type InvalidFontWeightError struct {
	Value any
}

func (e *InvalidFontWeightError) Error() string {
	return fmt.Sprintf("%s %#v: expected a multiple of 100 between 100 and 900, or one of %s",
		ErrInvalidFontWeight, e.Value, weightKeywords)
}

func (e *InvalidFontWeightError) Is(target error) bool {
	return target == ErrInvalidFontWeight
}

const weightKeywords = "thin, extra-light, ultra-light, light, normal, regular, medium, " +
	"semi-bold, demi-bold, bold, extra-bold, ultra-bold, black"

// UnsupportedFontSourceError reports a font whose source is neither a known
// hosted service nor a path with a font file extension.
type UnsupportedFontSourceError struct {
	Source any
}

func (e *UnsupportedFontSourceError) Error() string {
	return fmt.Sprintf("%s %#v: must be a font file path, 'google', or 'bunny'", ErrUnsupportedFontSource, e.Source)
}

func (e *UnsupportedFontSourceError) Is(target error) bool {
	return target == ErrUnsupportedFontSource
}

// UnsupportedFontFileFormatError reports a font file whose format cannot be
// served to browsers.
type UnsupportedFontFileFormatError struct {
	Source string
	Format string
}

func (e *UnsupportedFontFileFormatError) Error() string {
	msg := fmt.Sprintf("%s %q: expected one of opentype, truetype, woff, woff2", ErrUnsupportedFontFileFormat, e.Source)
	if e.Format != "" {
		msg += fmt.Sprintf(" (got %s)", e.Format)
	}

	return msg
}

func (e *UnsupportedFontFileFormatError) Is(target error) bool {
	return target == ErrUnsupportedFontFileFormat
}
