package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nimburion/mongokit/pkg/observability/logger"
	"github.com/nimburion/mongokit/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// idField is the canonical MongoDB identifier field.
const idField = "_id"

// MongoRepository is a MongoDB-backed implementation of Repository. Every
// operation is a thin delegation to the executor plus a result-shape
// transformation through the codec.
type MongoRepository[T any, ID comparable] struct {
	executor   Executor
	collection string
	codec      Codec[T, ID]
	logger     logger.Logger
	generateID func() any
}

// NewMongoRepository creates a new MongoRepository for the given collection.
// A nil logger defaults to a no-op logger. Missing string identifiers are
// generated with uuid; use WithIDGenerator to override.
func NewMongoRepository[T any, ID comparable](
	executor Executor,
	collection string,
	codec Codec[T, ID],
	log logger.Logger,
) (*MongoRepository[T, ID], error) {
	if executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if codec == nil {
		return nil, fmt.Errorf("codec is required")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &MongoRepository[T, ID]{
		executor:   executor,
		collection: collection,
		codec:      codec,
		logger:     log,
		generateID: func() any { return uuid.NewString() },
	}, nil
}

// WithIDGenerator overrides the generator used to fill missing identifiers
// on insert.
func (r *MongoRepository[T, ID]) WithIDGenerator(gen func() any) *MongoRepository[T, ID] {
	r.generateID = gen
	return r
}

// Insert stores a new entity. When the encoded document carries no
// identifier, one is generated.
func (r *MongoRepository[T, ID]) Insert(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}
	doc, err := r.codec.EncodeEntity(entity)
	if err != nil {
		return fmt.Errorf("failed to encode entity: %w", err)
	}
	if id, ok := doc[idField]; !ok || id == nil || id == "" {
		doc[idField] = r.generateID()
	}

	result, err := r.executor.InsertOne(ctx, r.collection, query.ToBSON(doc))
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	r.logger.Debug("document inserted", "collection", r.collection, "id", result.InsertedID)
	return nil
}

// FindByID retrieves an entity by its identifier. Structured identifiers
// are expanded to dotted paths under _id.
func (r *MongoRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	filter, err := r.idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.FindOne(ctx, filter)
}

// FindOne retrieves the first entity matching the filter. Returns
// ErrNotFound when nothing matches.
func (r *MongoRepository[T, ID]) FindOne(ctx context.Context, filter query.Doc) (*T, error) {
	out := bson.M{}
	if err := r.executor.FindOne(ctx, r.collection, query.ToBSON(orEmpty(filter)), &out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return r.decode(out)
}

// FindAll retrieves entities matching the query options with support for
// filtering, sorting, and pagination. Returns an empty slice when nothing
// matches.
func (r *MongoRepository[T, ID]) FindAll(ctx context.Context, opts QueryOptions) ([]T, error) {
	findOpts := options.Find()
	if opts.Sort.Field != "" {
		dir := 1
		if opts.Sort.Order == SortDesc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.Sort.Field, Value: dir}})
	}
	if opts.Pagination.Limit > 0 {
		findOpts.SetLimit(opts.Pagination.Limit)
	}
	if opts.Pagination.Skip > 0 {
		findOpts.SetSkip(opts.Pagination.Skip)
	}

	cursor, err := r.executor.Find(ctx, r.collection, query.ToBSON(orEmpty(opts.Filter)), findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	entities := make([]T, 0, len(raw))
	for _, doc := range raw {
		entity, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// Count returns the number of documents matching the filter.
func (r *MongoRepository[T, ID]) Count(ctx context.Context, filter query.Doc) (int64, error) {
	count, err := r.executor.CountDocuments(ctx, r.collection, query.ToBSON(orEmpty(filter)))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// Distinct returns the distinct values of field across documents matching
// the filter.
func (r *MongoRepository[T, ID]) Distinct(ctx context.Context, field string, filter query.Doc) ([]any, error) {
	if field == "" {
		return nil, query.NewInvalidArgumentError("field", "must not be empty")
	}
	values, err := r.executor.Distinct(ctx, r.collection, field, query.ToBSON(orEmpty(filter)))
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct values: %w", err)
	}
	return values, nil
}

// Aggregate runs an aggregation pipeline and returns the result documents.
func (r *MongoRepository[T, ID]) Aggregate(ctx context.Context, pipeline []query.Doc) ([]query.Doc, error) {
	stages := make(bson.A, 0, len(pipeline))
	for _, stage := range pipeline {
		stages = append(stages, query.ToBSON(stage))
	}
	cursor, err := r.executor.Aggregate(ctx, r.collection, stages)
	if err != nil {
		return nil, fmt.Errorf("failed to run aggregation: %w", err)
	}
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read aggregation results: %w", err)
	}

	results := make([]query.Doc, 0, len(raw))
	for _, doc := range raw {
		converted, err := query.FromBSON(doc)
		if err != nil {
			return nil, err
		}
		results = append(results, converted)
	}
	return results, nil
}

// Update applies an update document to every document matching the filter
// and returns the number of modified documents. The update document carries
// its own update operators (e.g. {"$set": {...}}).
func (r *MongoRepository[T, ID]) Update(ctx context.Context, filter query.Doc, update query.Doc) (int64, error) {
	result, err := r.executor.UpdateMany(ctx, r.collection, query.ToBSON(orEmpty(filter)), query.ToBSON(update))
	if err != nil {
		return 0, fmt.Errorf("failed to update documents: %w", err)
	}
	return result.ModifiedCount, nil
}

// UpdateByID applies an update document to the document with the given
// identifier. Returns ErrNotFound when no document matches.
func (r *MongoRepository[T, ID]) UpdateByID(ctx context.Context, id ID, update query.Doc) error {
	filter, err := r.idFilter(id)
	if err != nil {
		return err
	}
	result, err := r.executor.UpdateOne(ctx, r.collection, query.ToBSON(filter), query.ToBSON(update))
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Replace overwrites the document with the given identifier. Entities
// implementing Versioned get optimistic locking: the replace filters on the
// current version and increments it on success.
func (r *MongoRepository[T, ID]) Replace(ctx context.Context, id ID, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}
	filter, err := r.idFilter(id)
	if err != nil {
		return err
	}

	if versioned, ok := any(entity).(Versioned); ok {
		return r.replaceVersioned(ctx, id, filter, entity, versioned)
	}

	doc, err := r.codec.EncodeEntity(entity)
	if err != nil {
		return fmt.Errorf("failed to encode entity: %w", err)
	}
	result, err := r.executor.ReplaceOne(ctx, r.collection, query.ToBSON(filter), query.ToBSON(doc))
	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// replaceVersioned replaces a document under optimistic locking.
func (r *MongoRepository[T, ID]) replaceVersioned(
	ctx context.Context,
	id ID,
	idFilter query.Doc,
	entity *T,
	versioned Versioned,
) error {
	currentVersion := versioned.GetVersion()
	versioned.SetVersion(currentVersion + 1)

	doc, err := r.codec.EncodeEntity(entity)
	if err != nil {
		versioned.SetVersion(currentVersion)
		return fmt.Errorf("failed to encode entity: %w", err)
	}

	filter := query.Merge(query.Doc{versionField: currentVersion}, idFilter)
	result, err := r.executor.ReplaceOne(ctx, r.collection, query.ToBSON(filter), query.ToBSON(doc))
	if err != nil {
		versioned.SetVersion(currentVersion)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// Filter missed: either the document is gone or another writer bumped
	// the version. Look at the stored document to tell the two apart.
	versioned.SetVersion(currentVersion)
	out := bson.M{}
	if err := r.executor.FindOne(ctx, r.collection, query.ToBSON(idFilter), &out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check document version: %w", err)
	}
	return NewVersionConflictError(fmt.Sprintf("%v", id), currentVersion, toInt64(out[versionField]))
}

// Delete removes the document with the given identifier.
func (r *MongoRepository[T, ID]) Delete(ctx context.Context, id ID) error {
	filter, err := r.idFilter(id)
	if err != nil {
		return err
	}
	result, err := r.executor.DeleteOne(ctx, r.collection, query.ToBSON(filter))
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every document matching the filter and returns the
// number of deleted documents.
func (r *MongoRepository[T, ID]) DeleteAll(ctx context.Context, filter query.Doc) (int64, error) {
	result, err := r.executor.DeleteMany(ctx, r.collection, query.ToBSON(orEmpty(filter)))
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	return result.DeletedCount, nil
}

// idFilter builds the identifier filter for id. Structured identifiers are
// expanded to dotted paths under _id by the query builder.
func (r *MongoRepository[T, ID]) idFilter(id ID) (query.Doc, error) {
	encoded, err := r.codec.EncodeID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id: %w", err)
	}
	return query.Eq(idField, encoded)
}

// decode converts a raw driver document into an entity via the codec.
func (r *MongoRepository[T, ID]) decode(raw bson.M) (*T, error) {
	doc, err := query.FromBSON(raw)
	if err != nil {
		return nil, err
	}
	entity, err := r.codec.DecodeEntity(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	return entity, nil
}

// orEmpty substitutes an empty filter for nil so callers can pass nil to
// mean "match everything".
func orEmpty(filter query.Doc) query.Doc {
	if filter == nil {
		return query.Doc{}
	}
	return filter
}

// toInt64 normalizes the numeric kinds the driver may hand back for the
// version field.
func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
