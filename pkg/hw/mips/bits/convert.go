package bits

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrInvalidDigit = errors.New("invalid binary digit")
var ErrUnknownMode = errors.New("unknown number interpretation mode")

// How the digits of an input number map to bits
type Mode uint

const (
	// The number is converted with its regular base 2 representation
	Mode_Binary Mode = iota
	// Each decimal digit of the number (which must be 0 or 1) is read as a bit, least significant digit first
	Mode_BinaryLikeDecimal
)

func (m Mode) String() string {
	switch m {
	case Mode_Binary:
		return "binary"
	case Mode_BinaryLikeDecimal:
		return "binary-like-decimal"
	}

	return fmt.Sprintf("Mode(%d)", uint(m))
}

// Parses a mode from its name
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "bin":
		return Mode_Binary, nil
	case "binary-like-decimal", "bld", "decimal-digits":
		return Mode_BinaryLikeDecimal, nil
	}

	return 0, utils.MakeError(ErrUnknownMode, "'%v'", name)
}

// Converts an unsigned integer into a bit vector using its base 2 representation.
// Bits past the 32nd are dropped
func FromBinary(value uint64) BitVector {
	var result BitVector

	for i := 0; value != 0 && i < Width; i++ {
		result[i] = value&1 == 1
		value >>= 1
	}

	return result
}

// Converts a number whose decimal digits are 0s and 1s into a bit vector, reading the
// least significant digit as bit 0. Digits past the 32nd are dropped
func FromBinaryLikeDecimal(value uint64) (BitVector, error) {
	var result BitVector
	original := value

	for i := 0; value != 0; i++ {
		digit := value % 10
		value /= 10

		if digit > 1 {
			return BitVector{}, utils.MakeError(ErrInvalidDigit, "digit '%v' at position %v of %v is not 0 or 1", digit, i, original)
		}

		if i < Width {
			result[i] = digit == 1
		}
	}

	return result, nil
}

// Converts an unsigned integer into a bit vector, interpreting it as given by mode
func FromNumber(value uint64, mode Mode) (BitVector, error) {
	switch mode {
	case Mode_Binary:
		return FromBinary(value), nil
	case Mode_BinaryLikeDecimal:
		return FromBinaryLikeDecimal(value)
	}

	return BitVector{}, utils.MakeError(ErrUnknownMode, "%v", mode)
}

// Same as FromBinaryLikeDecimal() but taking the digits as a string, so that literals
// wider than 64 bit integers can be converted. An optional "0b" prefix and "_" digit
// separators are accepted
func ParseBinaryLikeDecimal(digits string) (BitVector, error) {
	trimmed := strings.TrimSpace(digits)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0b"), "0B")
	trimmed = strings.ReplaceAll(trimmed, "_", "")

	if len(trimmed) == 0 {
		return BitVector{}, utils.MakeError(ErrInvalidDigit, "'%v' has no digits", digits)
	}

	var result BitVector

	for i := 0; i < len(trimmed); i++ {
		position := len(trimmed) - 1 - i
		digit := trimmed[position]

		if digit != '0' && digit != '1' {
			return BitVector{}, utils.MakeError(ErrInvalidDigit, "'%c' at position %v of '%v' is not 0 or 1", digit, i, digits)
		}

		if i < Width {
			result[i] = digit == '1'
		}
	}

	return result, nil
}
