package decoder

import (
	"fmt"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/utils"
)

// Generates an ASCII frame of the instruction word, showing each field with its decoded value and bits
func PrettyPrint(fields []DecodedField, leftpad int) (string, error) {
	frameFields := make([]utils.AsciiFrameField, len(fields))

	// Frames expect fields sorted by position, least significant first
	for i, field := range fields {
		frameFields[len(fields)-i-1] = utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v=%v (%v)", field.Name, field.Value, field.Binary()),
			Begin: field.Offset,
			Width: field.Width,
		}
	}

	return utils.AsciiFrame(frameFields, bits.Width, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}
