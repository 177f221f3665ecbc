package query

// And requires every filter to match. No flattening or simplification is
// applied: And(x) is {"$and": [x]} even when x is itself an $and document.
func And(filters ...Doc) Doc {
	return logical("$and", filters)
}

// Or requires at least one filter to match.
func Or(filters ...Doc) Doc {
	return logical("$or", filters)
}

// Nor requires every filter to fail.
func Nor(filters ...Doc) Doc {
	return logical("$nor", filters)
}

// Match builds the bare {"$elemMatch": filter} form used inside array
// operator contexts, for example as an element of an All value.
func Match(filter Doc) Doc {
	return Doc{"$elemMatch": filter}
}

// logical builds {operator: [filters...]} with a guaranteed non-nil array.
// Zero filters produce an empty array; what an empty $or or $and matches is
// left to the server, no special case is applied here.
func logical(operator string, filters []Doc) Doc {
	arr := make([]any, 0, len(filters))
	for _, f := range filters {
		arr = append(arr, f)
	}
	return Doc{operator: arr}
}
