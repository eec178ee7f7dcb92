// Command datacontract validates tabular data files against data contracts.
//
//	datacontract [validate] -contract users.yaml -data-file users.csv [-format json]
//	datacontract schema -contract users.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	dc "github.com/reoring/datacontract"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // invalid data, escalated warnings or a terminal error
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	sub := "validate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub, args = args[0], args[1:]
	}
	switch sub {
	case "validate":
		return validateCmd(ctx, args, stdout, stderr)
	case "schema":
		return schemaCmd(args, stdout, stderr)
	case "help":
		usage(stdout)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `datacontract CLI

Usage:
  datacontract [validate] -contract FILE -data-file FILE [-data-file FILE ...] [flags]
  datacontract schema -contract FILE

Data files may be .csv, .json, .parquet or a database URL
(sqlite://path?table=t, mysql://dsn?table=t, postgres://dsn?table=t).

Exit status is 0 when every data file is valid, 1 when any is invalid (or has
warnings under -strict) or an error occurred, and 2 on usage errors.`)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// reportError prints a terminal error with its taxonomy name.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", dc.Category(err), err)
}
