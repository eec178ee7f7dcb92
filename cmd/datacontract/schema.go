package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// schemaCmd prints the JSON Schema of one row of the contract.
func schemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var contract string
	fs.StringVar(&contract, "contract", "", "path to the contract file (YAML/JSON)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if contract == "" {
		fmt.Fprintln(stderr, "schema: -contract is required")
		fs.Usage()
		return exitUsage
	}
	c, err := loadContract(contract)
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}
	s, err := c.JSONSchema()
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}
	fmt.Fprintln(stdout, string(b))
	return exitOK
}
