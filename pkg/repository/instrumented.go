package repository

import (
	"context"
	"time"

	"github.com/nimburion/mongokit/pkg/observability/metrics"
	"github.com/nimburion/mongokit/pkg/query"
)

// InstrumentedRepository decorates a Repository with Prometheus metrics:
// one counter and one latency histogram per operation, labeled by
// collection.
type InstrumentedRepository[T any, ID comparable] struct {
	next       Repository[T, ID]
	collection string
}

// NewInstrumentedRepository wraps next with operation metrics recorded under
// the given collection label.
func NewInstrumentedRepository[T any, ID comparable](next Repository[T, ID], collection string) *InstrumentedRepository[T, ID] {
	return &InstrumentedRepository[T, ID]{
		next:       next,
		collection: collection,
	}
}

func (r *InstrumentedRepository[T, ID]) Insert(ctx context.Context, entity *T) error {
	start := time.Now()
	err := r.next.Insert(ctx, entity)
	metrics.RecordOperation(r.collection, "insert", err, time.Since(start))
	return err
}

func (r *InstrumentedRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	start := time.Now()
	entity, err := r.next.FindByID(ctx, id)
	metrics.RecordOperation(r.collection, "find_by_id", err, time.Since(start))
	return entity, err
}

func (r *InstrumentedRepository[T, ID]) FindOne(ctx context.Context, filter query.Doc) (*T, error) {
	start := time.Now()
	entity, err := r.next.FindOne(ctx, filter)
	metrics.RecordOperation(r.collection, "find_one", err, time.Since(start))
	return entity, err
}

func (r *InstrumentedRepository[T, ID]) FindAll(ctx context.Context, opts QueryOptions) ([]T, error) {
	start := time.Now()
	entities, err := r.next.FindAll(ctx, opts)
	metrics.RecordOperation(r.collection, "find_all", err, time.Since(start))
	return entities, err
}

func (r *InstrumentedRepository[T, ID]) Count(ctx context.Context, filter query.Doc) (int64, error) {
	start := time.Now()
	count, err := r.next.Count(ctx, filter)
	metrics.RecordOperation(r.collection, "count", err, time.Since(start))
	return count, err
}

func (r *InstrumentedRepository[T, ID]) Distinct(ctx context.Context, field string, filter query.Doc) ([]any, error) {
	start := time.Now()
	values, err := r.next.Distinct(ctx, field, filter)
	metrics.RecordOperation(r.collection, "distinct", err, time.Since(start))
	return values, err
}

func (r *InstrumentedRepository[T, ID]) Aggregate(ctx context.Context, pipeline []query.Doc) ([]query.Doc, error) {
	start := time.Now()
	results, err := r.next.Aggregate(ctx, pipeline)
	metrics.RecordOperation(r.collection, "aggregate", err, time.Since(start))
	return results, err
}

func (r *InstrumentedRepository[T, ID]) Update(ctx context.Context, filter query.Doc, update query.Doc) (int64, error) {
	start := time.Now()
	modified, err := r.next.Update(ctx, filter, update)
	metrics.RecordOperation(r.collection, "update", err, time.Since(start))
	return modified, err
}

func (r *InstrumentedRepository[T, ID]) UpdateByID(ctx context.Context, id ID, update query.Doc) error {
	start := time.Now()
	err := r.next.UpdateByID(ctx, id, update)
	metrics.RecordOperation(r.collection, "update_by_id", err, time.Since(start))
	return err
}

func (r *InstrumentedRepository[T, ID]) Replace(ctx context.Context, id ID, entity *T) error {
	start := time.Now()
	err := r.next.Replace(ctx, id, entity)
	metrics.RecordOperation(r.collection, "replace", err, time.Since(start))
	return err
}

func (r *InstrumentedRepository[T, ID]) Delete(ctx context.Context, id ID) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)
	metrics.RecordOperation(r.collection, "delete", err, time.Since(start))
	return err
}

func (r *InstrumentedRepository[T, ID]) DeleteAll(ctx context.Context, filter query.Doc) (int64, error) {
	start := time.Now()
	deleted, err := r.next.DeleteAll(ctx, filter)
	metrics.RecordOperation(r.collection, "delete_all", err, time.Since(start))
	return deleted, err
}
