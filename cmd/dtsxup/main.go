package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	// Structured logging goes to stderr so the console report on stdout
	// stays clean.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)
	ctx := logger.WithContext(context.Background())

	rootCmd := NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
