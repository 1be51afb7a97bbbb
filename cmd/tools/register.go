package tools

import (
	"fmt"
	"io"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/registers"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register name...",
	Short: "Look up MIPS registers by name or number",
	Long: `Prints the number, encoding and description of each given register.
Registers can be given by mnemonic ($t0, t0, $s8) or by number ($8, 8).`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lookupRegisters(cmd.OutOrStdout(), args)
	},
}

// Writes the documentation line of each register. Stops at the first unknown register
func lookupRegisters(w io.Writer, names []string) error {
	for _, name := range names {
		register, err := registers.ByName(name)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, register.Documentation()); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	ToolsCmd.AddCommand(registerCmd)
}
