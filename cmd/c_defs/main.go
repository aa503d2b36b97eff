// Command c_defs prints c_defs.llh, a header that makes C sizes and stdio
// constants of the build platform visible to LLVM code.
//
//	go run ./cmd/c_defs > c_defs.llh
//
// It takes no arguments.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/appnet-org/cdefs/internal/cdefs"
	"github.com/appnet-org/cdefs/pkg/logging"
	"go.uber.org/zap"
)

// getLoggingConfig reads logging configuration from environment variables with defaults
func getLoggingConfig() *logging.Config {
	cfg := logging.DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

func run(w io.Writer) error {
	p := cdefs.Native()
	logging.Debug("Probed platform",
		zap.Int("charBit", p.CharBit),
		zap.Int("types", len(p.Types)),
		zap.Int("constants", len(p.Constants)))

	if err := cdefs.Generate(w, p); err != nil {
		return err
	}
	logging.Debug("Generated header", zap.String("file", cdefs.HeaderName))
	return nil
}

func main() {
	if err := logging.Init(getLoggingConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := run(os.Stdout); err != nil {
		logging.Fatal("Failed to generate header", zap.Error(err))
	}
}
