package alternator

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is matched by every *ArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a caller-supplied argument that cannot be used.
type ArgumentError struct {
	Arg     string
	Message string
	Hint    string // optional suggestion for fixing the call
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid argument ")
	sb.WriteString(e.Arg)
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
