// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"accountcheck/internal/config"
	"accountcheck/internal/logging"
	"accountcheck/internal/report"
	"accountcheck/internal/store"
)

// CommonFlags represents the flags that are shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Rules  string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// AppConfig is the resolved application configuration.
	AppConfig *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "account-check",
		Short: "Parse PDF bank statements into a categorized transaction ledger.",
		Long: `account-check turns PDF account statements into structured transactions,
assigns each transaction to a spending category by keyword matching and
aggregates totals by category and month.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to account-check!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg

			if cfg.CSV.Delimiter != "" {
				report.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds flag values accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Rules, "rules", "r", "", "Rules file (default from config)")
}

// LoadRules resolves and loads the rules file, preferring the --rules flag
// over the configured path.
func LoadRules() (*store.Ruleset, error) {
	rulesFile := SharedFlags.Rules
	if rulesFile == "" && AppConfig != nil {
		rulesFile = AppConfig.Rules.File
	}
	s := store.NewRuleStore(rulesFile, logging.GetLogger())
	return s.Load()
}

// GetLogger returns the adapter-wrapped shared logger.
func GetLogger() logging.Logger {
	return logging.GetLogger()
}
