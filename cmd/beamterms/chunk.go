package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/diodechain/beamterms/internal/beamfile"
)

func runChunk(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("beamterms chunk", pflag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: beamterms chunk <file>\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	positional := flagSet.Args()
	if len(positional) != 1 {
		flagSet.Usage()
		return fmt.Errorf("chunk: exactly one file argument required")
	}

	data, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("chunk: reading %s: %w", positional[0], err)
	}

	module, err := beamfile.Parse(data)
	if err != nil {
		return fmt.Errorf("chunk: %w", err)
	}

	logger.Info("parsed container", "file", positional[0], "chunks", len(module.Chunks))
	for _, c := range module.Chunks {
		fmt.Printf("%-8s %8d bytes\n", c.Name, len(c.Data))
	}
	return nil
}
