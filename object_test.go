package datacontract_test

import (
	"testing"

	dc "github.com/reoring/datacontract"
)

func TestObject_InsertionOrder(t *testing.T) {
	o := dc.NewObject(0)
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	if got := o.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("keys: %v", got)
	}
	if v, _ := o.Get("b"); v != 3 {
		t.Fatalf("b = %v", v)
	}
	if o.Has("c") || o.Len() != 2 {
		t.Fatalf("unexpected object state")
	}
}

func TestObject_MarshalJSON(t *testing.T) {
	inner := dc.NewObject(1)
	inner.Set("z", nil)
	o := dc.NewObject(3)
	o.Set("zeta", "x")
	o.Set("alpha", []any{int64(1), inner})
	o.Set("mid", true)
	b, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"zeta":"x","alpha":[1,{"z":null}],"mid":true}`; string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
	m := o.ToMap()
	if arr, ok := m["alpha"].([]any); !ok || len(arr) != 2 {
		t.Fatalf("ToMap: %#v", m)
	} else if _, ok := arr[1].(map[string]any); !ok {
		t.Fatalf("nested object not converted: %#v", arr[1])
	}
	var nilObj *dc.Object
	if b, _ := nilObj.MarshalJSON(); string(b) != "null" {
		t.Fatalf("nil object: %s", b)
	}
}

func TestPathRef(t *testing.T) {
	if p := dc.Root().Pointer(); p != "/" {
		t.Fatalf("root: %s", p)
	}
	if p := dc.Root().Index(3).Field("a/b~c").Pointer(); p != "/3/a~1b~0c" {
		t.Fatalf("escaped: %s", p)
	}
}
