package engine

import (
	"strconv"
	"strings"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/i18n"
)

// EnforceOptions controls duplicate key handling and nesting depth.
type EnforceOptions struct {
	// OnDuplicate: dc.Ignore skips detection, dc.Warn reports through
	// IssueSink and keeps the last value, dc.Error stops decoding.
	OnDuplicate dc.Severity
	MaxDepth    int
	// IssueSink receives every detected issue. May be nil.
	IssueSink func(dc.Issue)
}

// IssueError is returned when an enforced rule stops decoding.
type IssueError struct{ dc.Issue }

func (e IssueError) Error() string { return e.Issue.Message + " at " + e.Issue.Path }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// WrapWithEnforcement returns a TokenSource that applies opt to inner.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) report(is dc.Issue) {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(is)
	}
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	ptr := e.pathForToken(tok)
	switch tok.Kind {
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindArray {
			e.stack[n-1].nextIndex++
		}
	}
	path := ptr
	if path == "" {
		path = "/"
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := frame{kind: kindArray, path: ptr}
		if tok.Kind == KindBeginObject {
			f = frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: ptr}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			is := dc.Issue{Path: path, Code: dc.CodeParseError, Message: "max depth exceeded", Severity: dc.Error}
			e.report(is)
			return Token{}, IssueError{is}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		e.valueDone()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != dc.Ignore {
					is := dc.Issue{
						Path:     path,
						Code:     dc.CodeDuplicateKey,
						Message:  i18n.T(dc.CodeDuplicateKey, map[string]string{"key": tok.String}),
						Severity: e.opt.OnDuplicate,
					}
					e.report(is)
					if e.opt.OnDuplicate == dc.Error {
						return Token{}, IssueError{is}
					}
				}
				top.keys[tok.String] = struct{}{}
				top.expectingKey = false
				top.pendingKey = tok.String
			}
		}
	default:
		e.valueDone()
	}
	return tok, nil
}

// valueDone marks the pending member of the enclosing object as consumed.
func (e *enforcingTokenSource) valueDone() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

// pathForToken returns the JSON Pointer of the value or key tok belongs to.
func (e *enforcingTokenSource) pathForToken(tok Token) string {
	if len(e.stack) == 0 {
		return ""
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return joinPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if top.kind == kindArray {
		return joinPointer(top.path, strconv.Itoa(top.nextIndex))
	}
	if !top.expectingKey {
		return joinPointer(top.path, top.pendingKey)
	}
	return top.path
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
