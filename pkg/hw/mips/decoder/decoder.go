// Package decoder splits MIPS instruction words into their fields and names them.
//
// Every field value, register field or not, is resolved through the register name
// table, so fields wider than 5 bits only get a name when their value is below 32.
// What happens with the rest is controlled by an [OutOfRangePolicy].
package decoder

import (
	"errors"
	"strconv"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/registers"
	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrFieldIndexOutOfRange = errors.New("field index out of range")

// Decodes instruction words. Decoders are immutable and safe for concurrent use
type Decoder struct {
	options Options
}

// Creates a decoder. By default decoding fails on field values out of the register range
func New(opts ...Option) *Decoder {
	d := &Decoder{
		options: Options{
			OutOfRange: OutOfRange_Fail,
		},
	}

	for _, opt := range opts {
		opt(&d.options)
	}

	return d
}

// Returns the decoder settings
func (d *Decoder) Options() Options {
	return d.options
}

// Decodes the fields of a 32 bit instruction word given its format
func (d *Decoder) DecodeBits(word bits.BitVector, format formats.Format) (Fields, error) {
	schema, err := formats.SchemaFor(format)
	if err != nil {
		return Fields{}, err
	}

	if err := schema.Validate(); err != nil {
		return Fields{}, err
	}

	result := utils.MakeStaticVector[DecodedField](formats.MaxFields)
	offset := bits.Width

	for _, field := range schema.Fields {
		offset -= field.Width
		raw := word.Extract(offset, field.Width).Uint64()

		decoded, err := d.resolve(field, raw)
		if err != nil {
			return Fields{}, err
		}

		decoded.Offset = offset

		if err := result.PushBack(decoded); err != nil {
			return Fields{}, err
		}
	}

	return result, nil
}

func (d *Decoder) resolve(field formats.Field, raw uint64) (DecodedField, error) {
	decoded := DecodedField{
		Name:  field.Name,
		Raw:   raw,
		Width: field.Width,
	}

	name, err := registers.Name(raw)
	if err == nil {
		decoded.Value = name
		decoded.Resolved = true
		return decoded, nil
	}

	if d.options.OutOfRange == OutOfRange_Raw {
		decoded.Value = strconv.FormatUint(raw, 10)
		return decoded, nil
	}

	return DecodedField{}, utils.MakeError(ErrFieldIndexOutOfRange, "field '%v' (bits %v) has no register name: %w", field.Name, utils.FormatUintBinary(raw, field.Width), err)
}

// Decodes the fields of an instruction word given as an unsigned integer. Bits past the 32nd are ignored
func (d *Decoder) DecodeWord(word uint64, format formats.Format) (Fields, error) {
	return d.DecodeBits(bits.FromBinary(word), format)
}

// Packs the raw values of decoded fields back into an instruction word
func Reassemble(fields []DecodedField) uint32 {
	var word uint32 = 0
	view := utils.CreateBitView(&word)

	for _, field := range fields {
		view.Write(uint32(field.Raw), field.Offset, field.Width)
	}

	return word
}
