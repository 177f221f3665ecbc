package query

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToBSON converts a document to the driver's native bson.M representation.
// The conversion is lossless for the shapes this package produces: nested
// documents with string keys, arrays, and scalar leaves.
func ToBSON(d Doc) bson.M {
	out := bson.M{}
	for k, v := range d {
		out[k] = toBSONValue(v)
	}
	return out
}

func toBSONValue(value any) any {
	switch v := value.(type) {
	case Doc:
		return ToBSON(v)
	case map[string]any:
		return ToBSON(Doc(v))
	case bson.M:
		return ToBSON(Doc(v))
	case bson.D:
		return ToBSON(docFromD(v))
	case []any:
		return toBSONArray(v)
	case bson.A:
		return toBSONArray(v)
	case []Doc:
		arr := make(bson.A, 0, len(v))
		for _, e := range v {
			arr = append(arr, ToBSON(e))
		}
		return arr
	default:
		return v
	}
}

func toBSONArray(values []any) bson.A {
	arr := make(bson.A, 0, len(values))
	for _, e := range values {
		arr = append(arr, toBSONValue(e))
	}
	return arr
}

// FromBSON converts a native filter value back into a Doc. Supported inputs
// are the document shapes the driver hands back: bson.M, bson.D and plain
// maps. Any other shape is a ShapeMismatchError.
func FromBSON(value any) (Doc, error) {
	switch v := value.(type) {
	case Doc:
		return fromDoc(v), nil
	case map[string]any:
		return fromDoc(v), nil
	case bson.M:
		return fromDoc(v), nil
	case bson.D:
		return fromDoc(docFromD(v)), nil
	default:
		return nil, NewShapeMismatchError(value)
	}
}

func fromDoc(src map[string]any) Doc {
	out := Doc{}
	for k, v := range src {
		out[k] = fromBSONValue(v)
	}
	return out
}

func fromBSONValue(value any) any {
	switch v := value.(type) {
	case Doc:
		return fromDoc(v)
	case map[string]any:
		return fromDoc(v)
	case bson.M:
		return fromDoc(v)
	case bson.D:
		return fromDoc(docFromD(v))
	case []any:
		return fromBSONArray(v)
	case bson.A:
		return fromBSONArray(v)
	default:
		return v
	}
}

func fromBSONArray(values []any) []any {
	arr := make([]any, 0, len(values))
	for _, e := range values {
		arr = append(arr, fromBSONValue(e))
	}
	return arr
}

// docFromD rebuilds a Doc from an ordered bson.D. Later elements with the
// same key overwrite earlier ones, matching the expansion merge policy.
func docFromD(d bson.D) Doc {
	out := Doc{}
	for _, e := range d {
		out[e.Key] = e.Value
	}
	return out
}
