package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/diodechain/beamterms/codec"
)

// runRoundtrip returns a process exit code directly rather than an
// error, mirroring the exit-code convention of condition-check style
// CLI tools: 0 when the property holds, 1 when it does not, 2 on a
// usage or I/O error.
func runRoundtrip(logger *slog.Logger, args []string) int {
	flagSet := pflag.NewFlagSet("beamterms roundtrip", pflag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: beamterms roundtrip <file>\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	positional := flagSet.Args()
	if len(positional) != 1 {
		flagSet.Usage()
		return 2
	}

	data, err := os.ReadFile(positional[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: roundtrip: reading %s: %v\n", positional[0], err)
		return 2
	}

	if codec.Roundtrip(data) {
		logger.Info("roundtrip holds", "file", positional[0], "bytes", len(data))
		return 0
	}

	logger.Warn("roundtrip does not hold", "file", positional[0], "bytes", len(data))
	return 1
}
