package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/document"
	"github.com/reoring/datacontract/i18n"
	"github.com/reoring/datacontract/report"
	"github.com/reoring/datacontract/source"
)

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type validateConfig struct {
	contract  string
	dataFiles []string
	format    string
	strict    bool
	batch     int
	watch     bool
	opts      source.Options
}

func validateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfg       validateConfig
		dataFiles stringList
		delimiter string
		lang      string
		verbose   bool
	)
	fs.StringVar(&cfg.contract, "contract", "", "path to the contract file (YAML/JSON)")
	fs.Var(&dataFiles, "data-file", "data file or database URL to validate (repeatable)")
	fs.StringVar(&cfg.format, "format", "console", "output format: "+strings.Join(report.Names(), "|"))
	fs.BoolVar(&cfg.strict, "strict", false, "treat loader warnings as failures")
	fs.IntVar(&cfg.batch, "batch", 1, "number of data files validated concurrently")
	fs.BoolVar(&cfg.watch, "watch", false, "re-run when the contract or a data file changes")
	fs.StringVar(&delimiter, "delimiter", ",", "CSV delimiter")
	fs.StringVar(&cfg.opts.DataPath, "data-path", "", "dot-separated path to the records inside JSON data files")
	fs.BoolVar(&cfg.opts.RejectDuplicateKeys, "reject-duplicate-keys", false, "fail JSON data files with repeated keys")
	fs.StringVar(&lang, "lang", os.Getenv("DATACONTRACT_LANG"), "message language (en|ja)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	cfg.dataFiles = append(dataFiles, fs.Args()...)
	if cfg.contract == "" || len(cfg.dataFiles) == 0 {
		fmt.Fprintln(stderr, "validate: -contract and at least one -data-file are required")
		fs.Usage()
		return exitUsage
	}
	formatter, err := report.ForName(cfg.format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if utf8.RuneCountInString(delimiter) != 1 {
		fmt.Fprintf(stderr, "validate: -delimiter must be a single character, got %q\n", delimiter)
		return exitUsage
	}
	cfg.opts.Delimiter, _ = utf8.DecodeRuneInString(delimiter)
	if cfg.batch < 1 {
		cfg.batch = 1
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}

	log := newLogger(stderr, verbose)
	code := validateOnce(ctx, log, cfg, formatter, stdout, stderr)
	if !cfg.watch {
		return code
	}
	paths := append([]string{cfg.contract}, cfg.dataFiles...)
	err = watch(ctx, log, paths, func() {
		code = validateOnce(ctx, log, cfg, formatter, stdout, stderr)
	})
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}
	return code
}

// loadContract reads and compiles the contract file.
func loadContract(path string) (*dc.Contract, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		if dc.Category(err) == "Error" {
			return nil, &dc.ContractFormatError{Reason: err.Error(), Err: err}
		}
		return nil, err
	}
	return dc.Compile(doc)
}

type fileResult struct {
	result *report.Result
	err    error
}

func validateOnce(ctx context.Context, log *slog.Logger, cfg validateConfig, f report.Formatter, stdout, stderr io.Writer) int {
	c, err := loadContract(cfg.contract)
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}
	log.Debug("contract compiled", "contract", cfg.contract, "fields", len(c.Fields), "strict", c.Strict, "coerce", c.Coerce)

	results := validateFiles(ctx, log, c, cfg)
	code := exitOK
	for _, fr := range results {
		if fr.err != nil {
			reportError(stderr, fr.err)
			code = exitFailure
			continue
		}
		out, err := f.Format(fr.result)
		if err != nil {
			reportError(stderr, err)
			code = exitFailure
			continue
		}
		fmt.Fprintln(stdout, out)
		if !fr.result.IsValid || (cfg.strict && len(fr.result.Warnings) > 0) {
			code = exitFailure
		}
	}
	return code
}

// validateFiles validates every data file against c, at most cfg.batch at a
// time. Results keep argument order.
func validateFiles(ctx context.Context, log *slog.Logger, c *dc.Contract, cfg validateConfig) []fileResult {
	results := make([]fileResult, len(cfg.dataFiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.batch)
	for i, path := range cfg.dataFiles {
		i, path := i, path
		g.Go(func() error {
			ds, err := source.Load(gctx, path, cfg.opts)
			if err != nil {
				results[i].err = err
				return nil
			}
			log.Debug("dataset loaded", "data_file", path, "rows", ds.Len(), "columns", len(ds.Columns), "warnings", len(ds.Warnings))
			out := dc.Validate(c, ds)
			if out.FailureDetail != nil {
				log.Debug("validation failed", "data_file", path, "cases", len(out.FailureDetail.Details))
			}
			results[i].result = report.NewResult(path, cfg.contract, out)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
