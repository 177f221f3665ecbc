package query

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compare builds a single-operator filter for a field. Structured values are
// expanded to dotted paths first and every resulting leaf is wrapped in the
// named operator, so Compare("a", "$eq", Doc{"b": 1}) yields
// {"a.b": {"$eq": 1}}. Scalar values produce {field: {operator: value}}.
func Compare(field, operator string, value any) (Doc, error) {
	if field == "" {
		return nil, NewInvalidArgumentError("field", "must not be empty")
	}
	if operator == "" {
		return nil, NewInvalidArgumentError("operator", "must not be empty")
	}

	flat, err := Flatten(field, value)
	if err != nil {
		return nil, err
	}
	out := Doc{}
	for path, leaf := range flat {
		out[path] = Doc{operator: leaf}
	}
	return out, nil
}

// Eq matches documents where field equals value.
func Eq(field string, value any) (Doc, error) {
	return Compare(field, "$eq", value)
}

// Ne matches documents where field does not equal value.
func Ne(field string, value any) (Doc, error) {
	return Compare(field, "$ne", value)
}

// Gt matches documents where field is greater than value.
func Gt(field string, value any) (Doc, error) {
	return Compare(field, "$gt", value)
}

// Gte matches documents where field is greater than or equal to value.
func Gte(field string, value any) (Doc, error) {
	return Compare(field, "$gte", value)
}

// Lt matches documents where field is less than value.
func Lt(field string, value any) (Doc, error) {
	return Compare(field, "$lt", value)
}

// Lte matches documents where field is less than or equal to value.
func Lte(field string, value any) (Doc, error) {
	return Compare(field, "$lte", value)
}

// In matches documents where field equals any of values. With no values the
// $in array is empty, which matches no documents.
func In(field string, values ...any) (Doc, error) {
	return Compare(field, "$in", valueList(values))
}

// Nin matches documents where field equals none of values.
func Nin(field string, values ...any) (Doc, error) {
	return Compare(field, "$nin", valueList(values))
}

// All matches array fields containing every one of values.
func All(field string, values ...any) (Doc, error) {
	return Compare(field, "$all", valueList(values))
}

// Exists matches documents where field is present (exists=true) or absent
// (exists=false).
func Exists(field string, exists bool) (Doc, error) {
	return Compare(field, "$exists", exists)
}

// Size matches array fields with exactly n elements.
func Size(field string, n int) (Doc, error) {
	return Compare(field, "$size", n)
}

// ElemMatch matches array fields where at least one element satisfies
// filter. The filter is attached as-is: its field names are relative to the
// array elements, so no path expansion applies.
func ElemMatch(field string, filter Doc) (Doc, error) {
	if field == "" {
		return nil, NewInvalidArgumentError("field", "must not be empty")
	}
	return Doc{field: Doc{"$elemMatch": filter}}, nil
}

// Regex matches string fields against a regular expression pattern.
func Regex(field, pattern string) (Doc, error) {
	return Compare(field, "$regex", pattern)
}

// RegexWithOptions is Regex with MongoDB regex option flags (e.g. "i" for a
// case-insensitive match).
func RegexWithOptions(field, pattern, options string) (Doc, error) {
	if field == "" {
		return nil, NewInvalidArgumentError("field", "must not be empty")
	}
	return Doc{field: Doc{"$regex": pattern, "$options": options}}, nil
}

// RegexValue matches using a precompiled driver regular expression. The
// primitive.Regex value is attached untouched so the driver keeps its own
// escaping and flag semantics.
func RegexValue(field string, re primitive.Regex) (Doc, error) {
	if field == "" {
		return nil, NewInvalidArgumentError("field", "must not be empty")
	}
	return Doc{field: re}, nil
}

// valueList pins variadic arguments to a non-nil slice so the zero-argument
// form serializes as an empty array.
func valueList(values []any) []any {
	if values == nil {
		return []any{}
	}
	return values
}

// Not negates the filter produced by build for field, following the driver
// convention for $not: operator objects are negated directly, literal values
// are first lifted to an $eq.
func Not(field string, build func(field string) (Doc, error)) (Doc, error) {
	if field == "" {
		return nil, NewInvalidArgumentError("field", "must not be empty")
	}
	inner, err := build(field)
	if err != nil {
		return nil, err
	}

	out := Doc{}
	for path, value := range inner {
		if op, ok := asDoc(value); ok && isOperatorObject(op) {
			out[path] = Doc{"$not": op}
		} else {
			out[path] = Doc{"$not": Doc{"$eq": value}}
		}
	}
	return out, nil
}

// isOperatorObject reports whether d is a pure operator object such as
// {"$gt": 5}, with every key an operator key.
func isOperatorObject(d Doc) bool {
	if len(d) == 0 {
		return false
	}
	for k := range d {
		if !IsOperatorKey(k) {
			return false
		}
	}
	return true
}
