package query

import (
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEq_Scalar(t *testing.T) {
	got, err := Eq("name", "anna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"name": Doc{"$eq": "anna"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Eq = %v, want %v", got, want)
	}
}

func TestEq_StructuredValueExpandsToDottedPaths(t *testing.T) {
	got, err := Eq("address", Doc{"city": "roma", "geo": Doc{"lat": 41.9}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{
		"address.city":    Doc{"$eq": "roma"},
		"address.geo.lat": Doc{"$eq": 41.9},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Eq = %v, want %v", got, want)
	}
}

func TestEq_EmptyFieldFails(t *testing.T) {
	got, err := Eq("", 5)
	if err == nil {
		t.Fatal("expected error for empty field")
	}
	if got != nil {
		t.Fatalf("expected nil document on error, got %v", got)
	}
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %T", err)
	}
}

func TestCompare_EmptyOperatorFails(t *testing.T) {
	if _, err := Compare("f", "", 1); err == nil {
		t.Fatal("expected error for empty operator")
	}
}

func TestRangeOperators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, any) (Doc, error)
		op   string
	}{
		{"Ne", Ne, "$ne"},
		{"Gt", Gt, "$gt"},
		{"Gte", Gte, "$gte"},
		{"Lt", Lt, "$lt"},
		{"Lte", Lte, "$lte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn("qty", 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := Doc{"qty": Doc{tt.op: 7}}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("%s = %v, want %v", tt.name, got, want)
			}
		})
	}
}

func TestIn_Values(t *testing.T) {
	got, err := In("status", "active", "pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"status": Doc{"$in": []any{"active", "pending"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("In = %v, want %v", got, want)
	}
}

func TestIn_ZeroValuesYieldsEmptyArray(t *testing.T) {
	got, err := In("status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"status": Doc{"$in": []any{}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("In = %v, want %v", got, want)
	}
}

func TestNin(t *testing.T) {
	got, err := Nin("status", "deleted")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"status": Doc{"$nin": []any{"deleted"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Nin = %v, want %v", got, want)
	}
}

func TestAll(t *testing.T) {
	got, err := All("tags", "red", "blank")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"tags": Doc{"$all": []any{"red", "blank"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("All = %v, want %v", got, want)
	}
}

func TestExists(t *testing.T) {
	got, err := Exists("deleted_at", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"deleted_at": Doc{"$exists": false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Exists = %v, want %v", got, want)
	}
}

func TestSize(t *testing.T) {
	got, err := Size("tags", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"tags": Doc{"$size": 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Size = %v, want %v", got, want)
	}
}

func TestElemMatch_FilterIsNotExpanded(t *testing.T) {
	sub := Doc{"size": Doc{"$eq": "M"}}
	got, err := ElemMatch("items", sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"items": Doc{"$elemMatch": sub}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ElemMatch = %v, want %v", got, want)
	}
}

func TestElemMatch_EmptyFieldFails(t *testing.T) {
	if _, err := ElemMatch("", Doc{}); err == nil {
		t.Fatal("expected error for empty field")
	}
}

func TestRegex(t *testing.T) {
	got, err := Regex("name", "^an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"name": Doc{"$regex": "^an"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Regex = %v, want %v", got, want)
	}
}

func TestRegexWithOptions(t *testing.T) {
	got, err := RegexWithOptions("name", "^an", "i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"name": Doc{"$regex": "^an", "$options": "i"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RegexWithOptions = %v, want %v", got, want)
	}
}

func TestRegexValue_DelegatesToDriverType(t *testing.T) {
	re := primitive.Regex{Pattern: "^an", Options: "i"}
	got, err := RegexValue("name", re)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"name": re}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RegexValue = %v, want %v", got, want)
	}
}

func TestNot_WrapsOperatorObjectDirectly(t *testing.T) {
	got, err := Not("qty", func(field string) (Doc, error) {
		return Gt(field, 10)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"qty": Doc{"$not": Doc{"$gt": 10}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Not = %v, want %v", got, want)
	}
}

func TestNot_LiftsLiteralToEq(t *testing.T) {
	got, err := Not("name", func(field string) (Doc, error) {
		return Doc{field: "anna"}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Doc{"name": Doc{"$not": Doc{"$eq": "anna"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Not = %v, want %v", got, want)
	}
}

func TestNot_PropagatesBuilderError(t *testing.T) {
	_, err := Not("qty", func(field string) (Doc, error) {
		return Eq("", 1)
	})
	if err == nil {
		t.Fatal("expected builder error to propagate")
	}
}

func TestNot_EmptyFieldFails(t *testing.T) {
	_, err := Not("", func(field string) (Doc, error) {
		return Doc{}, nil
	})
	if err == nil {
		t.Fatal("expected error for empty field")
	}
}
