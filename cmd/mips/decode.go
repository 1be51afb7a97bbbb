package mips

import (
	"context"
	"log/slog"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var DecodeCmd = &cobra.Command{
	Use:   "decode [number]",
	Short: "Decode a MIPS instruction word",
	Long: `Splits a 32 bit instruction word into the fields of the given format and prints
one "<field> <value>" line per field, most significant field first. Each field
value is printed as the MIPS register it names.

Values that do not name a register (32 or above) make the command fail unless
--on-out-of-range=raw is given, in which case the decimal value is printed.

The number is read as an unsigned integer (decimal, or with a 0x, 0o or 0b prefix)
unless --binary is given, in which case its digits are taken as the instruction
bits, least significant digit first. Numbers wider than 32 bits are truncated.

Exit codes:
  0  success
  1  usage or configuration error
  2  invalid digit in the number
  3  a field value does not name a register
  4  the format fields do not span exactly 32 bits
  5  unknown instruction format

Examples:
  mipsdecode decode -f R 0x03e00008
  mipsdecode decode -f I --binary 00010001000010010000000000000011
  mipsdecode decode --on-out-of-range=raw -o yaml 965425896`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: runDecode,
}

func init() {
	addInstructionFlags(DecodeCmd.Flags())
	DecodeCmd.Flags().StringP("output", "o", "text", "Output format: text, yaml, frame")
	DecodeCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// Decodes the configured instruction
func decode(s settings) (*decodeResult, error) {
	if s.Config.Truncates() {
		slog.Warn("number does not fit in 32 bits, upper bits are ignored", "number", s.Config.Number)
	}

	word, err := s.Config.Bits()
	if err != nil {
		return nil, err
	}

	slog.Debug("decoding instruction", "format", s.Config.Format, "word", word, "out_of_range", s.OutOfRange)

	fields, err := decoder.New(decoder.WithOutOfRangePolicy(s.OutOfRange)).DecodeBits(word, s.Config.Format)
	if err != nil {
		return nil, err
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("decoded fields", "dump", spew.Sdump(fields.Items()))
	}

	return &decodeResult{
		Format: s.Config.Format,
		Word:   word,
		Fields: fields.Items(),
	}, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(args)
	if err != nil {
		return err
	}

	result, err := decode(s)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), s.Output, result, utils.NewHighlighter(s.NoColor))
}
