package report

import (
	json "github.com/goccy/go-json"
)

// JSON renders the Result envelope as JSON.
type JSON struct {
	Indent string
}

func (f JSON) Format(r *Result) (string, error) {
	var (
		b   []byte
		err error
	)
	if f.Indent == "" {
		b, err = json.Marshal(r)
	} else {
		b, err = json.MarshalIndent(r, "", f.Indent)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
