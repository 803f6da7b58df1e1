package syntax

import (
	"errors"
	"fmt"
)

// Error is a parse failure at a source position. The first error aborts the
// parse; no partial tree is returned.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// IsError reports whether err is or wraps a *Error.
func IsError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}
