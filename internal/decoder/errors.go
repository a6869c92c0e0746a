package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrShopNotFound is returned when feed has no shop element.
	ErrShopNotFound = errors.New("required <shop> element not found")

	errMissingID    = errors.New("offer must have id")
	errInvalidPrice = errors.New("offer must have a valid positive price")
	errMissingName  = errors.New("offer is missing name")
)

// ParsingError is returned when feed file is malformed or lacks mandatory structure.
type ParsingError struct {
	Err error
}

// Error returns error message.
func (e *ParsingError) Error() string {
	return fmt.Sprintf("can't parse feed: %s", e.Err)
}

// Unwrap returns underlying error.
func (e *ParsingError) Unwrap() error {
	return e.Err
}
