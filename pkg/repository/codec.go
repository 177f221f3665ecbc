package repository

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/nimburion/mongokit/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
)

// Codec defines how to map between entities and generic documents. Decode
// failures are the caller's own error types and pass through the repository
// unchanged, wrapped only for context.
type Codec[T any, ID comparable] interface {
	// EncodeEntity converts an entity to a generic document
	EncodeEntity(entity *T) (query.Doc, error)

	// DecodeEntity converts a generic document back into an entity
	DecodeEntity(doc query.Doc) (*T, error)

	// EncodeID converts an identifier to its stored representation
	EncodeID(id ID) (any, error)
}

// BSONCodec maps entities through the driver's bson marshalling, honoring
// bson struct tags. This is the codec to use when entities already carry
// driver tags.
type BSONCodec[T any, ID comparable] struct{}

// NewBSONCodec creates a new BSONCodec.
func NewBSONCodec[T any, ID comparable]() *BSONCodec[T, ID] {
	return &BSONCodec[T, ID]{}
}

// EncodeEntity converts an entity to a generic document via bson marshalling.
func (c *BSONCodec[T, ID]) EncodeEntity(entity *T) (query.Doc, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity document: %w", err)
	}
	return query.FromBSON(m)
}

// DecodeEntity converts a generic document back into an entity.
func (c *BSONCodec[T, ID]) DecodeEntity(doc query.Doc) (*T, error) {
	raw, err := bson.Marshal(query.ToBSON(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	entity := new(T)
	if err := bson.Unmarshal(raw, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// EncodeID returns the identifier unchanged; the driver handles the scalar
// identifier kinds natively.
func (c *BSONCodec[T, ID]) EncodeID(id ID) (any, error) {
	return id, nil
}

// MapCodec maps entities through mapstructure, without any bson round trip.
// It reads the same bson struct tags so both codecs agree on field names.
type MapCodec[T any, ID comparable] struct {
	tagName string
}

// NewMapCodec creates a new MapCodec.
func NewMapCodec[T any, ID comparable]() *MapCodec[T, ID] {
	return &MapCodec[T, ID]{tagName: "bson"}
}

// EncodeEntity converts an entity to a generic document.
func (c *MapCodec[T, ID]) EncodeEntity(entity *T) (query.Doc, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: c.tagName,
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(entity); err != nil {
		return nil, fmt.Errorf("failed to encode entity: %w", err)
	}
	return query.Doc(out), nil
}

// DecodeEntity converts a generic document back into an entity.
func (c *MapCodec[T, ID]) DecodeEntity(doc query.Doc) (*T, error) {
	entity := new(T)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: c.tagName,
		Result:  entity,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]any(doc)); err != nil {
		return nil, err
	}
	return entity, nil
}

// EncodeID returns the identifier unchanged.
func (c *MapCodec[T, ID]) EncodeID(id ID) (any, error) {
	return id, nil
}
