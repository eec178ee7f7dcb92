// Package document reads contract documents from YAML or JSON into
// order-preserving trees accepted by datacontract.Compile.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dc "github.com/reoring/datacontract"
)

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// LoadFile reads a contract document, choosing the decoder by extension:
// .yaml and .yml for YAML, .json for JSON. Decoding failures are returned as
// *datacontract.ContractFormatError wrapping the decoder error.
func LoadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var v any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		v, err = DecodeYAML(f)
	case ".json":
		v, err = DecodeJSON(f)
	default:
		return nil, &dc.ContractFormatError{Reason: fmt.Sprintf("%s: unsupported contract format %q (want .yaml, .yml or .json)", path, ext)}
	}
	if err != nil {
		return nil, &dc.ContractFormatError{Reason: fmt.Sprintf("%s: %v", path, err), Err: err}
	}
	return v, nil
}
