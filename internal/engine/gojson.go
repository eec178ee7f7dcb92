package engine

import (
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

type jsonFrame struct {
	object       bool
	expectingKey bool
}

// goJSONSource adapts a go-json Decoder to TokenSource. The decoder reports
// object keys as plain strings, so a frame stack tells keys from values.
type goJSONSource struct {
	dec   *j.Decoder
	stack []jsonFrame
}

// NewReader wraps r into a TokenSource backed by goccy/go-json.
func NewReader(r io.Reader) TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &goJSONSource{dec: dec}
}

func (s *goJSONSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, jsonFrame{object: true, expectingKey: true})
			return Token{Kind: KindBeginObject}, nil
		case '[':
			s.stack = append(s.stack, jsonFrame{})
			return Token{Kind: KindBeginArray}, nil
		case '}':
			s.pop()
			return Token{Kind: KindEndObject}, nil
		case ']':
			s.pop()
			return Token{Kind: KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			return Token{Kind: KindKey, String: v}, nil
		}
		s.valueDone()
		return Token{Kind: KindString, String: v}, nil
	case bool:
		s.valueDone()
		return Token{Kind: KindBool, Bool: v}, nil
	case j.Number:
		s.valueDone()
		return Token{Kind: KindNumber, Number: string(v)}, nil
	case float64:
		s.valueDone()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	}
	s.valueDone()
	return Token{Kind: KindNull}, nil
}

func (s *goJSONSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *goJSONSource) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].object && !s.stack[n-1].expectingKey {
		s.stack[n-1].expectingKey = true
	}
}
