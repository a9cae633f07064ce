package scanner

import (
	"errors"
	"fmt"

	"github.com/iamdustan/postcss/token"
)

// Error kinds. Every scanning error wraps exactly one of these.
var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrUnterminatedBracket = errors.New("unterminated bracket")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrNestingTooDeep      = errors.New("nesting too deep")
)

// Error represents a scan error.
type Error struct {
	Kind    error
	Message string
	Pos     token.Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, pos token.Pos, format string, v ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, v...), Pos: pos}
}
