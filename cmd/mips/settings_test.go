package mips

import (
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Overrides config keys for the duration of a test
func withConfig(t *testing.T, values map[string]any) {
	t.Cleanup(func() {
		viper.Reset()
		setDefaults()
	})

	for key, value := range values {
		viper.Set(key, value)
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	withConfig(t, nil)

	s, err := loadSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, decoder.Config{Format: formats.Format_R, Number: "965425896"}, s.Config)
	assert.Equal(t, decoder.OutOfRange_Fail, s.OutOfRange)
	assert.Equal(t, "text", s.Output)
}

func TestLoadSettings_FromConfig(t *testing.T) {
	withConfig(t, map[string]any{
		"format":           "i",
		"number":           "101",
		"number_is_binary": true,
		"on_out_of_range":  "raw",
		"output":           "yaml",
	})

	s, err := loadSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, decoder.Config{Format: formats.Format_I, Number: "101", NumberIsBinary: true}, s.Config)
	assert.Equal(t, decoder.OutOfRange_Raw, s.OutOfRange)
	assert.Equal(t, "yaml", s.Output)
}

func TestLoadSettings_ArgumentOverridesNumber(t *testing.T) {
	withConfig(t, map[string]any{"number": "1"})

	s, err := loadSettings([]string{"0x03e00008"})
	require.NoError(t, err)

	assert.Equal(t, "0x03e00008", s.Config.Number)
}

func TestLoadSettings_Errors(t *testing.T) {
	withConfig(t, map[string]any{"format": "X"})

	_, err := loadSettings(nil)
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)

	viper.Set("format", "R")
	viper.Set("on_out_of_range", "ignore")

	_, err = loadSettings(nil)
	assert.ErrorIs(t, err, decoder.ErrUnknownOutOfRangePolicy)
}
