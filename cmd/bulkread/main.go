// Command bulkread reads all files matching a pattern, combines them into
// one table, and writes the result as CSV.
//
//	bulkread -pattern '*.csv' -dir data -out combined.csv
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"bulkread"
	"bulkread/internal/config"
	"bulkread/internal/export"
	"bulkread/internal/files"
	"bulkread/reader"
	_ "bulkread/reader/excel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	pattern := flag.String("pattern", "", "file name pattern to match, e.g. '*.csv' (required)")
	dir := flag.String("dir", cfg.Dir, "directory to search")
	out := flag.String("out", "", "output CSV path (defaults to stdout)")
	sheet := flag.String("sheet", "", "sheet name for .xlsx input (defaults to the first sheet)")
	noHeader := flag.Bool("no-header", false, "input files have no header row")
	encName := flag.String("encoding", cfg.Encoding, "text encoding of the input files")
	delimiter := flag.String("delimiter", ",", "field delimiter for CSV input")
	jobs := flag.Int("jobs", cfg.Jobs, "number of files to read in parallel")
	bom := flag.Bool("bom", false, "prefix the output with a UTF-8 BOM")
	verbose := flag.Bool("v", false, "log per-file diagnostics")
	flag.Parse()

	level := parseLevel(cfg.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *pattern == "" {
		slog.Error("Missing required -pattern flag")
		flag.Usage()
		os.Exit(2)
	}
	if !files.IsDir(*dir) {
		slog.Error("Input directory does not exist", "dir", *dir)
		os.Exit(1)
	}

	opts := bulkread.DefaultOptions()
	opts.Dir = *dir
	opts.Header = !*noHeader
	opts.Encoding = *encName
	opts.Concurrency = *jobs
	opts.Logger = logger
	opts.ReaderOptions = reader.Options{}
	if *delimiter != "," {
		opts.ReaderOptions["comma"] = *delimiter
	}
	if *sheet != "" {
		opts.ReaderOptions["sheet"] = *sheet
	}
	if *noHeader {
		opts.ReaderOptions["header"] = false
	}

	res, err := bulkread.Read(context.Background(), *pattern, opts)
	if err != nil {
		slog.Error("Batch read failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Combined tables",
		slog.Int("rows", res.Combined.Len()),
		slog.Int("columns", len(res.Combined.Columns())),
		slog.Int("skipped_files", len(res.Failures)))

	exportOpts := export.Options{BOM: *bom}
	if *out == "" {
		err = export.Write(os.Stdout, res.Combined, exportOpts)
	} else {
		err = export.WriteFile(*out, res.Combined, exportOpts)
	}
	if err != nil {
		slog.Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
