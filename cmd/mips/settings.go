package mips

import (
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Instruction used when no number is given, as a flag, config key or argument
const defaultNumber = "965425896"

// Settings shared by the decode and inspect commands
type settings struct {
	Config     decoder.Config
	OutOfRange decoder.OutOfRangePolicy
	Output     string
	NoColor    bool
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("format", "R")
	viper.SetDefault("number", defaultNumber)
	viper.SetDefault("number_is_binary", false)
	viper.SetDefault("on_out_of_range", "error")
	viper.SetDefault("output", "text")
	viper.SetDefault("no_color", false)
}

// Adds the instruction flags to a command
func addInstructionFlags(flags *pflag.FlagSet) {
	flags.StringP("format", "f", "R", "Instruction format: R, I or J")
	flags.BoolP("binary", "b", false, "The number is a binary-like decimal: its digits are the instruction bits")
	flags.String("on-out-of-range", "error", "What to do with field values that do not name a register: error, raw")
}

// Binds the flags of the running command to their config keys. Must run once the command
// has been selected, as decode and inspect share the same keys
func bindFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"format":           "format",
		"number_is_binary": "binary",
		"on_out_of_range":  "on-out-of-range",
		"output":           "output",
		"no_color":         "no-color",
	}

	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// Collects the settings from viper. A positional argument overrides the configured number
func loadSettings(args []string) (settings, error) {
	format, err := formats.ParseFormat(viper.GetString("format"))
	if err != nil {
		return settings{}, err
	}

	policy, err := decoder.ParseOutOfRangePolicy(viper.GetString("on_out_of_range"))
	if err != nil {
		return settings{}, err
	}

	number := viper.GetString("number")
	if len(args) > 0 {
		number = args[0]
	}

	return settings{
		Config: decoder.Config{
			Format:         format,
			Number:         number,
			NumberIsBinary: viper.GetBool("number_is_binary"),
		},
		OutOfRange: policy,
		Output:     viper.GetString("output"),
		NoColor:    viper.GetBool("no_color"),
	}, nil
}
