package cmd

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/mipsdecode/cmd/mips"
	"github.com/Manu343726/mipsdecode/cmd/tools"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"
)

var cfgFile string

// Process exit codes
const (
	ExitSuccess = iota
	ExitFailure
	ExitInvalidDigit
	ExitFieldIndexOutOfRange
	ExitSchemaWidthMismatch
	ExitUnknownFormat
)

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mipsdecode",
	Short: "Decodes MIPS instruction words into their fields",
	Long: `mipsdecode splits a 32 bit MIPS instruction word into the fields of its
instruction format (R, I or J) and prints each field along with the register
it names.

Settings can be given as flags, in a YAML config file ($HOME/.mipsdecode.yaml
by default) or as MIPSDECODE_* environment variables.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString("log_level"), viper.GetString("log_format"), viper.GetString("log_file"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	reportError(err)
	atexit.Exit(ExitCode(err))
}

// Prints the error of a failed command to stderr. The error is only logged at debug level
func reportError(err error) {
	if err == nil {
		return
	}

	slog.Debug("command failed", "error", err)
	RootCmd.PrintErrln("Error:", err)
}

// Maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, bits.ErrInvalidDigit):
		return ExitInvalidDigit
	case errors.Is(err, decoder.ErrFieldIndexOutOfRange):
		return ExitFieldIndexOutOfRange
	case errors.Is(err, formats.ErrSchemaWidthMismatch):
		return ExitSchemaWidthMismatch
	case errors.Is(err, formats.ErrUnknownFormat):
		return ExitUnknownFormat
	}

	return ExitFailure
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, mips.DecodeCmd, mips.InspectCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mipsdecode.yaml)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	RootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")

	cobra.CheckErr(viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log_format", RootCmd.PersistentFlags().Lookup("log-format")))
	cobra.CheckErr(viper.BindPFlag("log_file", RootCmd.PersistentFlags().Lookup("log-file")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mipsdecode" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mipsdecode")
	}

	viper.SetEnvPrefix("MIPSDECODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		cobra.CheckErr(err)
	}
}
