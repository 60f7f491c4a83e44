package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/payment-strategy/cmd/demo"
	"fjacquet/payment-strategy/cmd/methods"
	"fjacquet/payment-strategy/cmd/pay"
	"fjacquet/payment-strategy/cmd/root"
	"fjacquet/payment-strategy/internal/logging"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env before anything logs so LOG_LEVEL from the file applies
	loadEnvSilently()

	root.Log = logging.NewLogrusAdapter(logLevelFromEnv(), "text")

	root.Init()

	root.Cmd.AddCommand(pay.Cmd)
	root.Cmd.AddCommand(methods.Cmd)
	root.Cmd.AddCommand(demo.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// logLevelFromEnv returns the bootstrap log level used until the
// configuration has been loaded.
func logLevelFromEnv() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
