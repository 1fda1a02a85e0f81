package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/diodechain/beamterms/internal/beamfile"
	"github.com/diodechain/beamterms/internal/config"
	"github.com/diodechain/beamterms/internal/scan"
	"github.com/diodechain/beamterms/internal/scancache"
)

func runScan(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("beamterms scan", pflag.ContinueOnError)
	chunkName := flagSet.String("chunk", "Code", "IFF chunk to scan")
	configPath := flagSet.String("config", "", "path to a beamterms YAML config file")
	cacheDir := flagSet.String("cache-dir", "", "scan cache directory (overrides config)")
	noCache := flagSet.Bool("no-cache", false, "skip the scan cache entirely")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: beamterms scan <file> [flags]\n\n")
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
		return fmt.Errorf("scan: exactly one file argument required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	cfg.ApplyFlags("", "", *cacheDir)

	fileData, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("scan: reading %s: %w", positional[0], err)
	}

	module, err := beamfile.Parse(fileData)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	chunkData, err := module.Chunk(*chunkName)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	instructions := chunkData
	if *chunkName == "Code" {
		_, rest, err := beamfile.SplitCode(chunkData)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		instructions = rest
	}

	var cache *scancache.Cache
	digest := scancache.Digest(instructions)
	if !*noCache {
		cache, err = scancache.Open(cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		if cached, hit, err := cache.Get(digest); err == nil && hit {
			logger.Info("scan cache hit", "file", positional[0], "chunk", *chunkName)
			printCachedReport(cached)
			return nil
		}
	}

	report := scan.Scan(instructions)
	logger.Info("scan complete",
		"file", positional[0],
		"chunk", *chunkName,
		"findings", len(report.Findings),
		"canonical", report.CanonicalCount(),
		"skipped_bytes", report.SkippedBytes,
	)
	printReport(report)

	if cache != nil {
		if err := cache.Put(digest, scancache.NewRecord(report)); err != nil {
			logger.Warn("failed to write scan cache entry", "error", err)
		}
	}
	return nil
}

func printReport(report scan.Report) {
	for _, finding := range report.Findings {
		marker := "ok"
		if !finding.Canonical {
			marker = "non-canonical"
		}
		fmt.Printf("%8d +%-4d %-9s %s\n", finding.Offset, finding.Length, marker, fmt.Sprintf("%T", finding.Term))
	}
	fmt.Printf("skipped %d byte(s)\n", report.SkippedBytes)
}

func printCachedReport(record scancache.Record) {
	for _, finding := range record.Findings {
		marker := "ok"
		if !finding.Canonical {
			marker = "non-canonical"
		}
		fmt.Printf("%8d +%-4d %-9s %s\n", finding.Offset, finding.Length, marker, finding.Kind)
	}
	fmt.Printf("skipped %d byte(s)\n", record.SkippedBytes)
}
