package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/payment-strategy/cmd/root"
	"fjacquet/payment-strategy/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "payment-strategy", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "payment strategies")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
	assert.True(t, root.Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	configFlag := root.Cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-format"))
}

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&root.Flags.LogLevel, "log-level", "", "")
	cmd.Flags().StringVar(&root.Flags.LogFormat, "log-format", "", "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := config.Default()
	cmd := newFlagCommand(t, "--log-level", "debug", "--log-format", "json")

	require.NoError(t, root.ApplyFlagOverrides(cmd, cfg))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestApplyFlagOverrides_UnchangedFlagsKeepConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cmd := newFlagCommand(t)

	require.NoError(t, root.ApplyFlagOverrides(cmd, cfg))

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyFlagOverrides_Invalid(t *testing.T) {
	cfg := config.Default()
	cmd := newFlagCommand(t, "--log-format", "xml")

	err := root.ApplyFlagOverrides(cmd, cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestSetup_BuildsContainer(t *testing.T) {
	t.Setenv("PAYMENT_PAYMENT_DEFAULT_METHOD", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payment:\n  default_method: Transfer\n"), 0o644))

	root.Flags.ConfigFile = path
	t.Cleanup(func() { root.Flags.ConfigFile = "" })

	require.NoError(t, root.Setup(newFlagCommand(t)))

	require.NotNil(t, root.AppContainer)
	assert.Equal(t, "Transfer", root.AppContainer.GetConfig().Payment.DefaultMethod)
}

func TestSetup_MissingConfigFile(t *testing.T) {
	root.Flags.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { root.Flags.ConfigFile = "" })

	assert.Error(t, root.Setup(newFlagCommand(t)))
}
