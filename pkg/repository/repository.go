// Package repository provides a generic data access layer for MongoDB-backed
// document collections, parameterized over an entity type and an identifier
// type. Filters are query.Doc values built with the query package and are
// converted to the driver's native representation at the executor boundary.
package repository

import (
	"context"

	"github.com/nimburion/mongokit/pkg/query"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reader provides read operations for document entities.
type Reader[T any, ID comparable] interface {
	FindByID(ctx context.Context, id ID) (*T, error)
	FindOne(ctx context.Context, filter query.Doc) (*T, error)
	FindAll(ctx context.Context, opts QueryOptions) ([]T, error)
	Count(ctx context.Context, filter query.Doc) (int64, error)
	Distinct(ctx context.Context, field string, filter query.Doc) ([]any, error)
	Aggregate(ctx context.Context, pipeline []query.Doc) ([]query.Doc, error)
}

// Writer provides write operations for document entities.
type Writer[T any, ID comparable] interface {
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, filter query.Doc, update query.Doc) (int64, error)
	UpdateByID(ctx context.Context, id ID, update query.Doc) error
	Replace(ctx context.Context, id ID, entity *T) error
	Delete(ctx context.Context, id ID) error
	DeleteAll(ctx context.Context, filter query.Doc) (int64, error)
}

// Repository combines Reader and Writer interfaces for document stores.
type Repository[T any, ID comparable] interface {
	Reader[T, ID]
	Writer[T, ID]
}

// QueryOptions encapsulates filtering, sorting, and pagination options for
// document queries.
type QueryOptions struct {
	Filter     query.Doc
	Sort       Sort
	Pagination Pagination
}

// Sort specifies field and direction for sorting results.
type Sort struct {
	Field string
	Order SortOrder
}

// SortOrder defines the direction of sorting.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination specifies skip/limit pagination for document queries.
type Pagination struct {
	Limit int64
	Skip  int64
}

// Executor defines the document execution contract the repository delegates
// to. The store/mongodb Adapter satisfies it; tests substitute fakes.
type Executor interface {
	InsertOne(ctx context.Context, collection string, document any) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, collection string, filter any, result any) error
	Find(ctx context.Context, collection string, filter any, opts *options.FindOptions) (*mongo.Cursor, error)
	UpdateOne(ctx context.Context, collection string, filter, update any) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, collection string, filter, update any) (*mongo.UpdateResult, error)
	ReplaceOne(ctx context.Context, collection string, filter, replacement any) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter any) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, collection string, filter any) (*mongo.DeleteResult, error)
	Distinct(ctx context.Context, collection, field string, filter any) ([]any, error)
	Aggregate(ctx context.Context, collection string, pipeline any) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, collection string, filter any) (int64, error)
}
