package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	accountcmd "accountcheck/cmd/account"
	"accountcheck/cmd/months"
	"accountcheck/cmd/parse"
	"accountcheck/cmd/root"
	"accountcheck/cmd/summary"
)

func init() {
	// Load environment variables silently first, then fix the global log
	// level before any logger is created.
	loadEnvSilently()
	logrus.SetLevel(configuredLogLevel())

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(months.Cmd)
	root.Cmd.AddCommand(accountcmd.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
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

// configuredLogLevel resolves the log level from the environment, defaulting
// to info.
func configuredLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
