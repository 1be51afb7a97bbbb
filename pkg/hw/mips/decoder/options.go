package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

var ErrUnknownOutOfRangePolicy = errors.New("unknown out of range policy")

// What to do with fields whose value has no register name
type OutOfRangePolicy uint

const (
	// Fail decoding with ErrFieldIndexOutOfRange
	OutOfRange_Fail OutOfRangePolicy = iota
	// Print the raw decimal value of the field instead of a register name
	OutOfRange_Raw
)

func (p OutOfRangePolicy) String() string {
	switch p {
	case OutOfRange_Fail:
		return "error"
	case OutOfRange_Raw:
		return "raw"
	}

	return fmt.Sprintf("OutOfRangePolicy(%d)", uint(p))
}

// Parses a policy from its name ("error" or "raw")
func ParseOutOfRangePolicy(name string) (OutOfRangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "fail":
		return OutOfRange_Fail, nil
	case "raw":
		return OutOfRange_Raw, nil
	}

	return 0, utils.MakeError(ErrUnknownOutOfRangePolicy, "'%v', expected 'error' or 'raw'", name)
}

// Decoder settings
type Options struct {
	OutOfRange OutOfRangePolicy
}

type Option func(*Options)

// Sets the policy applied to field values out of the register range
func WithOutOfRangePolicy(policy OutOfRangePolicy) Option {
	return func(o *Options) {
		o.OutOfRange = policy
	}
}
