package decoder

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrNumberTooLarge = errors.New("number does not fit in 64 bits")

// Input of a decoding run
type Config struct {
	// Format of the instruction
	Format formats.Format
	// Instruction word literal
	Number string
	// If true, Number is a binary-like decimal (its digits are the instruction bits).
	// Otherwise Number is an unsigned integer literal, decimal or with a 0x, 0o or 0b prefix
	NumberIsBinary bool
}

// Returns the bits of the configured instruction word
func (c Config) Bits() (bits.BitVector, error) {
	if c.NumberIsBinary {
		return bits.ParseBinaryLikeDecimal(c.Number)
	}

	value, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(c.Number), "_", ""), 0, 64)
	if errors.Is(err, strconv.ErrRange) {
		return bits.BitVector{}, utils.MakeError(ErrNumberTooLarge, "'%v'", c.Number)
	}
	if err != nil {
		return bits.BitVector{}, utils.MakeError(bits.ErrInvalidDigit, "'%v' is not an unsigned integer: %w", c.Number, err)
	}

	return bits.FromBinary(value), nil
}

// Returns true if the configured number does not fit in 32 bits, so decoding it drops its upper bits
func (c Config) Truncates() bool {
	if c.NumberIsBinary {
		digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(c.Number), "0b"), "0B")
		return len(strings.TrimLeft(strings.ReplaceAll(digits, "_", ""), "0")) > bits.Width
	}

	value, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(c.Number), "_", ""), 0, 64)
	return err == nil && value>>bits.Width != 0
}

// Decodes the instruction described by a configuration
func (d *Decoder) Decode(cfg Config) (Fields, error) {
	word, err := cfg.Bits()
	if err != nil {
		return Fields{}, err
	}

	return d.DecodeBits(word, cfg.Format)
}
