// Package errs is the project's facade over cockroachdb/errors. Marks survive
// wrapping, which is how specific errors carry their category to the handler.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// categories in lookup order; the first mark found wins.
var categories = []error{
	ErrNotFound,
	ErrValidation,
	ErrConfiguration,
	ErrConflict,
	ErrForbidden,
}

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark returns markErr itself when err is nil.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// CategoryOf returns the category sentinel err is marked with, or nil.
func CategoryOf(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if cr.Is(err, c) {
			return c
		}
	}
	return nil
}

// ExtractStackLines renders the verbose form of err, which includes the
// recorded stack, cut to maxLines (0 keeps everything).
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
