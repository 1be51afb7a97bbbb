// Package formats contains the bit-field layouts of the MIPS instruction formats.
package formats

import (
	"errors"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrSchemaWidthMismatch = errors.New("schema width mismatch")

// Maximum number of fields of any instruction format
const MaxFields = 6

// Named contiguous range of bits of an instruction word
type Field struct {
	// Field name, as printed by the decoder
	Name string
	// Width of the field in bits
	Width int
	// Field description (for documentation)
	Description string
}

// Field along with its position within the instruction word
type FieldLayout struct {
	Field
	// First (least significant) bit of the field
	Offset int
}

// Ordered list of fields of an instruction format, most significant field first
type Schema struct {
	Format Format
	Fields []Field
}

// Returns the sum of the widths of all fields
func (s *Schema) TotalWidth() int {
	return utils.Accumulate(s.Fields, func(f Field) int { return f.Width })
}

// Checks the fields of the schema partition a 32 bit word exactly
func (s *Schema) Validate() error {
	if total := s.TotalWidth(); total != bits.Width {
		return utils.MakeError(ErrSchemaWidthMismatch, "%v format fields (%v) span %v bits, expected %v",
			s.Format, utils.FormatSlice(utils.Map(s.Fields, func(f Field) string { return f.Name }), ", "), total, bits.Width)
	}

	if len(s.Fields) > MaxFields {
		return utils.MakeError(ErrSchemaWidthMismatch, "%v format has %v fields, at most %v are supported", s.Format, len(s.Fields), MaxFields)
	}

	return nil
}

// Returns the fields with their bit offsets. Offsets are computed walking the word from
// its most significant bit downwards, so a schema wider than the word produces negative
// offsets for the trailing fields
func (s *Schema) Layout() []FieldLayout {
	layout := make([]FieldLayout, len(s.Fields))
	offset := bits.Width

	for i, field := range s.Fields {
		offset -= field.Width
		layout[i] = FieldLayout{
			Field:  field,
			Offset: offset,
		}
	}

	return layout
}
