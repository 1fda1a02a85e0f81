// beamterms is a small CLI around the compact term codec: it locates
// chunks inside a compiled BEAM module, best-effort scans a Code
// chunk's instruction stream for decodable terms, decodes a single
// term from a hex literal, and checks the roundtrip property over an
// arbitrary byte buffer.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(args) == 0 {
		printUsage()
		return 2
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "chunk":
		err = runChunk(logger, rest)
	case "scan":
		err = runScan(logger, rest)
	case "decode":
		err = runDecode(logger, rest)
	case "roundtrip":
		return runRoundtrip(logger, rest)
	case "--help", "-h", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "beamterms: unknown command %q\n", command)
		printUsage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `beamterms — compact term format tooling for BEAM Code chunks

Usage:
  beamterms chunk <file>            list IFF chunks and their sizes
  beamterms scan <file> [--chunk NAME]
                                     best-effort decode/re-encode report
                                     over a chunk's instruction stream
  beamterms decode <hex>            decode a single term from hex bytes
  beamterms roundtrip <file>        exit 0 if decode-then-encode of the
                                     whole file reproduces it exactly

Run "beamterms <command> --help" for flags specific to a command.
`)
}
