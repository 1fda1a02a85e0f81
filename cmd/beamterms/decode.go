package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/diodechain/beamterms/codec"
	"github.com/diodechain/beamterms/internal/render"
)

func runDecode(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("beamterms decode", pflag.ContinueOnError)
	format := flagSet.String("format", "text", "output format: text or cbor")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: beamterms decode <hex bytes> [flags]\n\n")
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
		return fmt.Errorf("decode: exactly one hex-bytes argument required")
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(positional[0], "0x"))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	t, rest, err := codec.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	logger.Info("decoded term", "consumed", len(raw)-len(rest), "remaining", len(rest))

	switch *format {
	case "cbor":
		out, err := render.MarshalCBOR(t)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Printf("%x\n", out)
	default:
		fmt.Println(render.Text(render.DefaultTheme, t))
	}

	if len(rest) > 0 {
		fmt.Printf("# %d trailing byte(s) unconsumed: %x\n", len(rest), rest)
	}
	return nil
}
