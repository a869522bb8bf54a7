package base58

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned (wrapped) by Decode when
// the input holds a character outside of Alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

// InvalidCharacterError reports the first offending character of a decode.
type InvalidCharacterError struct {
	Char rune
	// Offset is the byte offset of Char in the input string.
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

// Unwrap makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
