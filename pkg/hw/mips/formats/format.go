package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrUnknownFormat = errors.New("unknown instruction format")

// MIPS instruction encoding
type Format uint

const (
	// Register-type instructions
	Format_R Format = iota
	// Immediate-type instructions
	Format_I
	// Jump-type instructions
	Format_J

	// Number of instruction formats
	TOTAL_FORMATS
)

func (f Format) String() string {
	switch f {
	case Format_R:
		return "R"
	case Format_I:
		return "I"
	case Format_J:
		return "J"
	}

	return fmt.Sprintf("Format(%d)", uint(f))
}

// Returns a longer description of the format
func (f Format) Description() string {
	switch f {
	case Format_R:
		return "register-type"
	case Format_I:
		return "immediate-type"
	case Format_J:
		return "jump-type"
	}

	return "unknown"
}

// Parses a format from its name (R, I or J, case insensitive)
func ParseFormat(name string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "R":
		return Format_R, nil
	case "I":
		return Format_I, nil
	case "J":
		return Format_J, nil
	}

	return 0, utils.MakeError(ErrUnknownFormat, "'%v', expected one of R, I, J", name)
}
