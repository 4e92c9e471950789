// Package errs is the single import for error construction. Marks survive wrapping,
// which is how use cases tag storage and validation failures for the handlers.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err with markErr; a nil err yields markErr itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands marks added with Mark as well as regular wrapping.
func Is(err, reference error) bool { return cr.Is(err, reference) }

func IsAny(err error, references ...error) bool { return cr.IsAny(err, references...) }

func As(err error, target any) bool { return cr.As(err, target) }

// ExtractStackLines returns the first maxLines lines of the verbose rendering, which includes the stack.
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
