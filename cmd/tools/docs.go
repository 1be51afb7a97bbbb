package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/registers"
	"github.com/Manu343726/mipsdecode/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() string{
	"mips.formats":   formats.Documentation,
	"mips.registers": registers.Documentation,
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show mipsdecode documentation",
	Long: `Dumps the documentation of the specified module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.Keys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:         cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs:    utils.Keys(supportedModules),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, _ := cmd.Flags().GetString("output")
		return writeDocs(cmd.OutOrStdout(), args[0], outputFile)
	},
}

// Writes the documentation of a module to outputFile, or to stdout if outputFile is empty
func writeDocs(stdout io.Writer, module string, outputFile string) error {
	docs, ok := supportedModules[module]
	if !ok {
		return fmt.Errorf("unknown module '%v'", module)
	}

	if outputFile == "" {
		_, err := fmt.Fprintln(stdout, docs())
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintln(file, docs())
	return err
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
