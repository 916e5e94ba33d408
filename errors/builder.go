package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder provides a fluent API for attaching hints and details to an error.
type ErrorBuilder struct {
	err       error
	hints     []string
	sentinels []error
}

// Build creates a new ErrorBuilder from a base error.
func Build(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint adds a user-facing hint to the error.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithExplanation adds a detailed explanation to the error.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

// WithSentinel marks the error with a sentinel error for errors.Is() checks.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err finalizes and returns the enriched error.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	return err
}

// Hints returns every hint attached anywhere in the error chain.
func Hints(err error) []string {
	return errors.GetAllHints(err)
}

// Details returns every explanation attached anywhere in the error chain.
func Details(err error) []string {
	return errors.GetAllDetails(err)
}

// Wrapf wraps err with a formatted message, keeping it matchable with errors.Is.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
