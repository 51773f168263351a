package biguint

import "fmt"

// DivideByZeroError is returned by any division or modulus with a zero
// divisor.
type DivideByZeroError struct{}

// Error returns the error message.
func (DivideByZeroError) Error() string {
	return "division or modulus by zero"
}

// InvalidBaseError is returned by parsing or formatting with a base
// outside {2..36, 256}.
type InvalidBaseError struct {
	// Base is the rejected base.
	Base int
}

// Error returns the error message.
func (e InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %d: must be in [2, 36] or 256", e.Base)
}

// InvalidDigitError is returned by parsing when a character decodes to a
// value at or above the base. It carries the offending character and its
// byte offset for diagnostics.
type InvalidDigitError struct {
	// Base is the base being parsed.
	Base int
	// Char is the offending input character.
	Char byte
	// Pos is the byte offset of Char in the input.
	Pos int
}

// Error returns the error message.
func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("not a digit in base %d: %q at offset %d", e.Base, e.Char, e.Pos)
}
