package formats

import "github.com/Manu343726/mipsdecode/pkg/utils"

// Common MIPS fields
var (
	op      = Field{Name: "op", Width: 6, Description: "Operation code"}
	rs      = Field{Name: "rs", Width: 5, Description: "First source register"}
	rt      = Field{Name: "rt", Width: 5, Description: "Second source register (destination of immediate instructions)"}
	rd      = Field{Name: "rd", Width: 5, Description: "Destination register"}
	shamt   = Field{Name: "shamt", Width: 5, Description: "Shift amount"}
	funct   = Field{Name: "funct", Width: 6, Description: "Function code, selects the operation variant of R instructions"}
	offset  = Field{Name: "offset", Width: 16, Description: "Immediate value or branch/memory offset"}
	address = Field{Name: "address", Width: 26, Description: "Jump target address"}
)

// Field layouts of all the instruction formats, indexed by format
var schemas = [TOTAL_FORMATS]*Schema{
	Format_R: {
		Format: Format_R,
		Fields: []Field{op, rs, rt, rd, shamt, funct},
	},
	Format_I: {
		Format: Format_I,
		Fields: []Field{op, rs, rt, offset},
	},
	// rs and rt are kept ahead of the address as they have always been decoded that way.
	// These fields span 42 bits, so Validate() rejects the schema
	Format_J: {
		Format: Format_J,
		Fields: []Field{op, rs, rt, address},
	},
}

// Returns the schema of a format
func SchemaFor(f Format) (*Schema, error) {
	if f >= TOTAL_FORMATS {
		return nil, utils.MakeError(ErrUnknownFormat, "%v", f)
	}

	return schemas[f], nil
}

// Returns the schemas of all formats
func All() []*Schema {
	return schemas[:]
}
