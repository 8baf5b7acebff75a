package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Generate, solve, and check 9x9 Sudoku puzzles",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(
		newServeCommand(&logLevel),
		newGenerateCommand(),
		newSolveCommand(),
		newCheckCommand(),
	)
	return root
}

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().
		Logger()
}
