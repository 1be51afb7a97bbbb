package decoder

import (
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_BinaryAndDecimalAgree(t *testing.T) {
	d := New(WithOutOfRangePolicy(OutOfRange_Raw))

	decimal, err := d.Decode(Config{Format: formats.Format_R, Number: "965425896"})
	require.NoError(t, err)

	binary, err := d.Decode(Config{Format: formats.Format_R, Number: "00111001100010110011101011101000", NumberIsBinary: true})
	require.NoError(t, err)

	hex, err := d.Decode(Config{Format: formats.Format_R, Number: "0x398b3ae8"})
	require.NoError(t, err)

	assert.Equal(t, decimal.Items(), binary.Items())
	assert.Equal(t, decimal.Items(), hex.Items())
}

func TestConfig_InvalidNumber(t *testing.T) {
	for _, cfg := range []Config{
		{Number: "12a"},
		{Number: "-1"},
		{Number: ""},
		{Number: "1012", NumberIsBinary: true},
	} {
		_, err := New().Decode(cfg)
		assert.ErrorIs(t, err, bits.ErrInvalidDigit, "number '%v'", cfg.Number)
	}
}

func TestConfig_NumberTooLarge(t *testing.T) {
	for _, number := range []string{"99999999999999999999999", "0x1_0000_0000_0000_0000"} {
		_, err := New().Decode(Config{Number: number})

		assert.ErrorIs(t, err, ErrNumberTooLarge, "number '%v'", number)
		assert.NotErrorIs(t, err, bits.ErrInvalidDigit, "number '%v'", number)
	}
}

func TestConfig_BinaryLikeDecimalWiderThanTheWord(t *testing.T) {
	cfg := Config{Number: "1111110000000000000000000000000000", NumberIsBinary: true}

	word, err := cfg.Bits()
	require.NoError(t, err)

	assert.Equal(t, uint64(0xf0000000), word.Uint64())
	assert.True(t, cfg.Truncates())
}

func TestConfig_Truncates(t *testing.T) {
	assert.False(t, Config{Number: "4294967295"}.Truncates())
	assert.True(t, Config{Number: "4294967296"}.Truncates())
	assert.False(t, Config{Number: "0011", NumberIsBinary: true}.Truncates())
	assert.False(t, Config{Number: "00000000000000000000000000000000000001", NumberIsBinary: true}.Truncates())
}
