package repository

import (
	"reflect"
	"testing"

	"github.com/nimburion/mongokit/pkg/query"
)

func TestBSONCodec_RoundTrip(t *testing.T) {
	codec := NewBSONCodec[user, string]()
	in := &user{ID: "u1", Name: "anna", Age: 30}

	doc, err := codec.EncodeEntity(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["_id"] != "u1" || doc["name"] != "anna" {
		t.Fatalf("unexpected document: %v", doc)
	}

	out, err := codec.DecodeEntity(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
}

func TestBSONCodec_EncodeID(t *testing.T) {
	codec := NewBSONCodec[user, string]()
	id, err := codec.EncodeID("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "u1" {
		t.Fatalf("id = %v, want u1", id)
	}
}

func TestMapCodec_RoundTrip(t *testing.T) {
	codec := NewMapCodec[user, string]()
	in := &user{ID: "u2", Name: "bo", Age: 25}

	doc, err := codec.EncodeEntity(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["_id"] != "u2" {
		t.Fatalf("expected bson tag names to be honored, got %v", doc)
	}

	out, err := codec.DecodeEntity(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
}

func TestMapCodec_DecodeError(t *testing.T) {
	codec := NewMapCodec[user, string]()
	_, err := codec.DecodeEntity(query.Doc{"_id": "u1", "age": "not-a-number"})
	if err == nil {
		t.Fatal("expected decode error for mismatched field type")
	}
}
