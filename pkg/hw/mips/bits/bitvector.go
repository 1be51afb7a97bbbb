// Package bits implements the fixed width bit sequence instruction words are decoded from.
package bits

import (
	"fmt"
	"strings"
)

// Number of bits of a MIPS instruction word
const Width = 32

// Fixed length sequence of 32 bits. Index 0 is the least significant bit.
//
// BitVector is a value type: extracting ranges produces new vectors and never
// modifies the source.
type BitVector [Width]bool

// Returns the value of the i-th bit
func (v BitVector) Bit(i int) bool {
	return v[i]
}

// Returns the unsigned integer encoded by the vector, adding up bit[i] * 2^i
func (v BitVector) Uint64() uint64 {
	var result uint64 = 0

	for i := Width - 1; i >= 0; i-- {
		result <<= 1

		if v[i] {
			result |= 1
		}
	}

	return result
}

// Returns the vector as a 32 bit word
func (v BitVector) Uint32() uint32 {
	return uint32(v.Uint64())
}

// Returns a new vector containing the width bits starting at offset, moved to index 0.
// Bits past width are zero in the result. The range must lie within [0, Width)
func (v BitVector) Extract(offset int, width int) BitVector {
	if offset < 0 || width < 0 || offset+width > Width {
		panic(fmt.Sprintf("bit range [%v, %v) out of bounds of a %v bit vector", offset, offset+width, Width))
	}

	var result BitVector
	copy(result[:width], v[offset:offset+width])
	return result
}

// Formats the vector as a string of 0s and 1s, most significant bit first
func (v BitVector) String() string {
	var builder strings.Builder
	builder.Grow(Width)

	for i := Width - 1; i >= 0; i-- {
		if v[i] {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}
