package query

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Doc is a generic document: a mapping from field names or operator keys to
// values. It is the common representation for filter documents and for
// entities encoded through a repository codec.
type Doc map[string]any

// operatorPrefix marks a key as a query operator rather than a field name.
const operatorPrefix = "$"

// IsOperatorKey reports whether key denotes a query operator such as "$eq"
// or "$and" rather than a field-path segment.
func IsOperatorKey(key string) bool {
	return strings.HasPrefix(key, operatorPrefix)
}

// Merge copies every entry of src into dst and returns dst. Duplicate keys
// are overwritten by src (last write wins). This is the documented merge
// policy for expansion: callers never intentionally emit the same dotted
// path twice, so no deep merge is attempted.
func Merge(dst, src Doc) Doc {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Flatten converts a nested value into a flat document keyed by dotted field
// paths, suitable for direct use as a MongoDB filter.
//
// Field keys recurse with the key appended to the path prefix, so
// Flatten("", Doc{"a": Doc{"b": 1}}) yields {"a.b": 1}. Operator keys stop
// the recursion: with a non-empty prefix the operator is attached to the
// prefix path, and sibling operators accumulate into one operator object, so
// Flatten("price", Doc{"$gte": 1, "$lte": 5}) yields
// {"price": {"$gte": 1, "$lte": 5}} regardless of iteration order. With an
// empty prefix the pair passes through unchanged, which lets top-level
// documents like {"$and": [...]} survive a Flatten("", doc) call.
//
// Values that are not documents become leaves under the prefix. A leaf with
// an empty prefix has no path to live under and is rejected with an
// InvalidArgumentError; the result is always a document.
func Flatten(prefix string, value any) (Doc, error) {
	obj, ok := asDoc(value)
	if !ok {
		if prefix == "" {
			return nil, NewInvalidArgumentError("prefix", "must not be empty for non-document values")
		}
		return Doc{prefix: value}, nil
	}

	out := Doc{}
	for key, sub := range obj {
		if IsOperatorKey(key) {
			if prefix == "" {
				out[key] = sub
				continue
			}
			op, ok := out[prefix].(Doc)
			if !ok {
				op = Doc{}
				out[prefix] = op
			}
			op[key] = sub
			continue
		}

		child := key
		if prefix != "" {
			child = prefix + "." + key
		}
		flat, err := Flatten(child, sub)
		if err != nil {
			return nil, err
		}
		Merge(out, flat)
	}
	return out, nil
}

// asDoc normalizes the document-shaped types accepted by the builder.
// Arrays are deliberately excluded: expansion only recurses on documents,
// array values are leaves.
func asDoc(value any) (Doc, bool) {
	switch v := value.(type) {
	case Doc:
		return v, true
	case map[string]any:
		return v, true
	case bson.M:
		return Doc(v), true
	}
	return nil, false
}
