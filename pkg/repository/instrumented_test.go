package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/nimburion/mongokit/pkg/query"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	_ Repository[user, string] = (*MongoRepository[user, string])(nil)
	_ Repository[user, string] = (*InstrumentedRepository[user, string])(nil)
)

func TestInstrumentedRepository_DelegatesReads(t *testing.T) {
	exec := &fakeExecutor{countResult: 2, distinctVals: []any{"anna"}}
	instr := NewInstrumentedRepository[user, string](newUserRepo(t, exec), "users")

	count, err := instr.Count(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	values, err := instr.Distinct(context.Background(), "name", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("values = %v", values)
	}
}

func TestInstrumentedRepository_DelegatesWritesAndErrors(t *testing.T) {
	exec := &fakeExecutor{
		deleteResult: &mongo.DeleteResult{DeletedCount: 0},
		updateResult: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1},
	}
	instr := NewInstrumentedRepository[user, string](newUserRepo(t, exec), "users")

	if err := instr.Insert(context.Background(), &user{Name: "anna"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := instr.UpdateByID(context.Background(), "u1", query.Doc{"$set": query.Doc{"name": "bo"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := instr.Delete(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := instr.DeleteAll(context.Background(), query.Doc{"age": query.Doc{"$lt": 18}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
