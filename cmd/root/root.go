// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/payment-strategy/internal/config"
	"fjacquet/payment-strategy/internal/container"
	"fjacquet/payment-strategy/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger for commands. It is replaced by the
	// configured logger once PersistentPreRunE has run.
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies for the running command.
	AppContainer *container.Container

	// Flags holds the values of the persistent flags.
	Flags = GlobalFlags{}

	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "payment-strategy",
		Short: "Execute payments through interchangeable payment strategies.",
		Long: `payment-strategy selects a payment method (DebitCard, CreditCard or Transfer)
by name and executes a transaction through it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
		},
	}
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&Flags.ConfigFile, "config", "c", "", "Config file (default: config.yaml in $HOME/.payment-strategy, .payment-strategy or .)")
		Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text, json)")
	})
}

// Setup loads the environment and configuration, applies flag overrides and
// builds AppContainer.
func Setup(cmd *cobra.Command) error {
	if envFile := config.LoadEnv(); envFile != "" {
		Log.WithField(logging.FieldConfigFile, envFile).Debug("Loaded environment file")
	}

	cfg, err := config.LoadConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}

	if err := ApplyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// ApplyFlagOverrides copies explicitly set log flags onto cfg and revalidates it.
func ApplyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = Flags.LogLevel
	}
	if f := flags.Lookup("log-format"); f != nil && f.Changed {
		cfg.Log.Format = Flags.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
