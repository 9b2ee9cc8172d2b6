package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/calword/pkg/core/config"
	"github.com/msto63/calword/pkg/core/logging"
)

var (
	cfgFile    string
	verbose    bool
	noColor    bool
	remoteAddr string

	appConfig *config.Config
	logger    *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "calword",
	Short: "calword - calendar & ordinal toolkit",
	Long: `calword computes business-day offsets, spells English ordinals and
formats dates for display and speech.

Commands run locally by default. With --remote they call a running
calword server instead.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CALWORD_CONFIG or ./configs/calword.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&remoteAddr, "remote", "", "address of a calword server, e.g. 127.0.0.1:50151")
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logger = newLogger(cmd.ErrOrStderr())
	logger.Debug("Configuration loaded", "source", appConfig.Source())
	return nil
}

func newLogger(output io.Writer) *logging.Logger {
	cfg := logging.DefaultLoggerConfig(appConfig.General.Name)
	cfg.Level = appConfig.General.LogLevel
	cfg.Format = appConfig.General.LogFormat
	cfg.Output = output
	if verbose {
		cfg.Level = "debug"
	}
	return logging.Wrap(logging.NewLogger(cfg))
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("Error:"), err)
}
