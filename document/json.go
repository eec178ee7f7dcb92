package document

import (
	"errors"
	"fmt"
	"io"

	dc "github.com/reoring/datacontract"
	eng "github.com/reoring/datacontract/internal/engine"
)

// maxDepth bounds nesting of contract documents.
const maxDepth = 64

// DecodeJSON decodes a single JSON value from r. Objects become
// *datacontract.Object in document order, integral numbers int64 and other
// numbers float64. Duplicate keys are rejected.
func DecodeJSON(r io.Reader) (any, error) {
	src := eng.WrapWithEnforcement(eng.NewReader(r), eng.EnforceOptions{OnDuplicate: dc.Error, MaxDepth: maxDepth})
	v, err := eng.Decode(src)
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) && ie.Code == dc.CodeDuplicateKey {
			return nil, &DuplicateKeyError{Key: lastToken(ie.Path)}
		}
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty JSON document")
		}
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func lastToken(ptr string) string {
	for i := len(ptr) - 1; i >= 0; i-- {
		if ptr[i] == '/' {
			return pointerUnescaper.Replace(ptr[i+1:])
		}
	}
	return ptr
}
