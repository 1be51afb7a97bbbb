package registers

import (
	"fmt"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

type RegisterDescriptor struct {
	// Register number, as encoded in 5 bit register fields
	Index int

	// Canonical assembly mnemonic, including the '$' prefix
	Name string

	// Register description (for documentation/debugging)
	Description string
}

func (d *RegisterDescriptor) String() string {
	return d.Name
}

// Returns the binary representation of the register number
func (d *RegisterDescriptor) Encode() uint64 {
	return uint64(d.Index)
}

// Returns the register number in the generic "$n" syntax accepted by MIPS assemblers
func (d *RegisterDescriptor) NumericName() string {
	return fmt.Sprintf("$%d", d.Index)
}

// Returns a one line summary of the register, for documentation
func (d *RegisterDescriptor) Documentation() string {
	return fmt.Sprintf("%-5v %-4v %v  %v", d.Name, d.NumericName(), utils.FormatUintBinary(d.Encode(), RegisterBits), d.Description)
}

// Creates count registers named $<prefix><firstSuffix>, $<prefix><firstSuffix+1>, ...
// Register numbers are assigned when the registers are added to the register table
func makeRegisters(prefix string, firstSuffix int, count int, description string) []*RegisterDescriptor {
	return utils.Iota(count, func(i int) *RegisterDescriptor {
		return &RegisterDescriptor{
			Name:        fmt.Sprintf("$%v%d", prefix, firstSuffix+i),
			Description: description,
		}
	})
}
