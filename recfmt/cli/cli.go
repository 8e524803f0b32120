package cli

import (
	"errors"

	"github.com/npillmayer/kit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1 experimental"

// errFailedRecords signals that some records did not parse. Details have
// already been reported.
var errFailedRecords = errors.New("some records failed to parse")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recfmt",
	Short: "Validate and parse flat text records against a pattern",
	Long: `Welcome to recfmt V0.1 (experimental)

recfmt checks record patterns and parses text records with them. Every line
of input is a record. Patterns describe literals, typed fields, arrays,
matrices and optional trailing sections; 'recfmt types' lists the type
characters.

`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	rootCmd.AddCommand(checkCmd, parseCmd, typesCmd, replCmd)
	if err := rootCmd.ExecuteContext(kit.SignalContext); err != nil {
		if !errors.Is(err, errFailedRecords) {
			tracer().Errorf(err.Error())
		}
		kit.Exit(2)
	}
	kit.Exit(0)
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.String("logfile", "stderr", "URL of log output location")
	flags.StringP("pattern", "p", "", "record pattern")
	flags.AddFlagSet(propertyFlags())
}

// propertyFlags are the flags for the properties of the record parser.
// Their names are the configuration keys read by formatOptions.
func propertyFlags() *pflag.FlagSet {
	props := pflag.NewFlagSet("properties", pflag.ContinueOnError)
	props.Bool("trim", false, "trim white space around values")
	props.Bool("blank-values", false, "accept empty values as 0, false or \"\"")
	props.Bool("blank-columns", false, "accept blank columns as 0, false or \"\"")
	props.Bool("tab-as-space", false, "treat tabulators as blanks")
	props.Bool("space-in-column", false, "skip blanks between fields")
	return props
}
