package query

import (
	"reflect"
	"testing"
)

// mustDoc returns a helper that unwraps a builder result, failing the test
// on error. The returned func accepts the (Doc, error) pair directly.
func mustDoc(t *testing.T) func(Doc, error) Doc {
	return func(d Doc, err error) Doc {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return d
	}
}

func TestAnd_SingleArgumentIsNotFlattened(t *testing.T) {
	x := And(Doc{"a": 1})
	got := And(x)
	want := Doc{"$and": []any{x}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("And = %v, want %v", got, want)
	}
}

func TestOr_EndToEnd(t *testing.T) {
	must := mustDoc(t)
	got := Or(
		must(Gte("price", 10)),
		must(Lt("qty", 5)),
	)
	want := Doc{"$or": []any{
		Doc{"price": Doc{"$gte": 10}},
		Doc{"qty": Doc{"$lt": 5}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Or = %v, want %v", got, want)
	}
}

func TestNor(t *testing.T) {
	got := Nor(Doc{"a": 1}, Doc{"b": 2})
	want := Doc{"$nor": []any{Doc{"a": 1}, Doc{"b": 2}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Nor = %v, want %v", got, want)
	}
}

func TestAnd_ZeroArgumentsYieldsEmptyArray(t *testing.T) {
	got := And()
	want := Doc{"$and": []any{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("And = %v, want %v", got, want)
	}
}

func TestMatch_EndToEnd(t *testing.T) {
	must := mustDoc(t)
	got := Match(And(
		must(Eq("size", "M")),
		must(Gt("num", 50)),
	))
	want := Doc{"$elemMatch": Doc{"$and": []any{
		Doc{"size": Doc{"$eq": "M"}},
		Doc{"num": Doc{"$gt": 50}},
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Match = %v, want %v", got, want)
	}
}
