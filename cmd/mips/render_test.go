package mips

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/Manu343726/mipsdecode/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decodeDefault(t *testing.T, policy decoder.OutOfRangePolicy) *decodeResult {
	t.Helper()

	result, err := decode(settings{
		Config:     decoder.Config{Format: formats.Format_R, Number: defaultNumber},
		OutOfRange: policy,
	})
	require.NoError(t, err)

	return result
}

func TestDecode_DefaultInstructionFails(t *testing.T) {
	_, err := decode(settings{
		Config: decoder.Config{Format: formats.Format_R, Number: defaultNumber},
	})

	assert.ErrorIs(t, err, decoder.ErrFieldIndexOutOfRange)
}

func TestDecode_InvalidNumber(t *testing.T) {
	_, err := decode(settings{
		Config: decoder.Config{Format: formats.Format_R, Number: "12", NumberIsBinary: true},
	})

	assert.ErrorIs(t, err, bits.ErrInvalidDigit)
}

func TestRenderText(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, render(&out, "text", decodeDefault(t, decoder.OutOfRange_Raw), utils.Highlighter{}))
	assert.Equal(t, "op $t6\nrs $t4\nrt $t3\nrd $a3\nshamt $t3\nfunct 40\n", out.String())
}

func TestRenderText_Zero(t *testing.T) {
	result, err := decode(settings{
		Config: decoder.Config{Format: formats.Format_I, Number: "0"},
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, render(&out, "text", result, utils.Highlighter{}))

	assert.Equal(t, "op $zero\nrs $zero\nrt $zero\noffset $zero\n", out.String())
}

func TestRenderYAML(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, render(&out, "yaml", decodeDefault(t, decoder.OutOfRange_Raw), utils.Highlighter{Enabled: true}))

	var doc yamlInstruction
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "R", doc.Format)
	assert.Equal(t, "00111001100010110011101011101000", doc.Word)
	assert.Equal(t, uint32(965425896), doc.Value)
	assert.Equal(t, "0x398b3ae8", doc.Hex)
	require.Len(t, doc.Fields, 6)
	assert.Equal(t, yamlField{Name: "op", Value: "$t6", Bits: "001110", Raw: 14, Offset: 26, Width: 6, Register: true}, doc.Fields[0])
	assert.Equal(t, yamlField{Name: "funct", Value: "40", Bits: "101000", Raw: 40, Offset: 0, Width: 6, Register: false}, doc.Fields[5])
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRenderFrame(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, render(&out, "frame", decodeDefault(t, decoder.OutOfRange_Raw), utils.Highlighter{}))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "R (register-type): 00111001100010110011101011101000\n"))
	assert.Contains(t, text, "| op=$t6 (001110) |")
	assert.True(t, strings.HasSuffix(text, "shamt $t3\nfunct 40\n"))
}

func TestRender_UnknownOutput(t *testing.T) {
	err := render(&bytes.Buffer{}, "xml", decodeDefault(t, decoder.OutOfRange_Raw), utils.Highlighter{})

	assert.ErrorIs(t, err, ErrUnknownOutput)
}
