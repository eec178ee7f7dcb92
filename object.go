package datacontract

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// Object is an insertion-ordered string-keyed mapping. Document and dataset
// loaders produce Objects so that declaration order survives decoding.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty Object with room for n keys.
func NewObject(n int) *Object {
	return &Object{keys: make([]string, 0, n), vals: make(map[string]any, n)}
}

// Set stores v under k. A new key is appended; an existing key keeps its
// position and has its value replaced.
func (o *Object) Set(k string, v any) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// ToMap returns a plain map copy (nested Objects are converted as well).
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, o.Len())
	for _, k := range o.Keys() {
		out[k] = plainValue(o.vals[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.ToMap()
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = plainValue(t[i])
		}
		return arr
	default:
		return v
	}
}

// mapping is the read view the compiler uses over *Object and map[string]any.
type mapping interface {
	keys() []string
	get(k string) (any, bool)
}

type objectMapping struct{ o *Object }

func (m objectMapping) keys() []string           { return m.o.Keys() }
func (m objectMapping) get(k string) (any, bool) { return m.o.Get(k) }

// plainMapping walks a map[string]any in sorted key order.
type plainMapping struct {
	m      map[string]any
	sorted []string
}

func (m plainMapping) keys() []string           { return m.sorted }
func (m plainMapping) get(k string) (any, bool) { v, ok := m.m[k]; return v, ok }

func asMapping(v any) (mapping, bool) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil, false
		}
		return objectMapping{o: t}, true
	case map[string]any:
		ks := make([]string, 0, len(t))
		for k := range t {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		return plainMapping{m: t, sorted: ks}, true
	default:
		return nil, false
	}
}

// MarshalJSON encodes the Object with its keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	buf := bytes.NewBuffer(make([]byte, 0, 16*len(o.keys)+2))
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
