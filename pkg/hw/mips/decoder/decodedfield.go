package decoder

import (
	"fmt"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

// Result of decoding one field of an instruction word
type DecodedField struct {
	// Field name
	Name string
	// Decoded value: the register mnemonic, or the raw value in decimal if it could not be resolved
	Value string
	// Raw field bits as an unsigned integer
	Raw uint64
	// First bit of the field within the instruction word
	Offset int
	// Width of the field in bits
	Width int
	// False if Value holds the raw number because it is out of the register range
	Resolved bool
}

// Returns the field in the "<name> <value>" output format
func (f DecodedField) String() string {
	return fmt.Sprintf("%v %v", f.Name, f.Value)
}

// Returns the raw field bits as a fixed width binary string
func (f DecodedField) Binary() string {
	return utils.FormatUintBinary(f.Raw, f.Width)
}

// Ordered decoded fields of an instruction, most significant field first
type Fields = utils.StaticVector[DecodedField]
