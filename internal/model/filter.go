package model

// TaskFilter narrows which tasks the server is asked for. All fields are
// optional; nil means no constraint on that field. The filter is
// client-only and ephemeral: it is serialized into query parameters and
// never stored.
type TaskFilter struct {
	Status     *string
	Priority   *string
	CategoryID *string
}

// Equal reports whether two filters request the same task subset,
// comparing the three optional fields by value.
func (f TaskFilter) Equal(other TaskFilter) bool {
	return equalPtr(f.Status, other.Status) &&
		equalPtr(f.Priority, other.Priority) &&
		equalPtr(f.CategoryID, other.CategoryID)
}

// IsZero reports whether the filter places no constraints.
func (f TaskFilter) IsZero() bool {
	return f.Status == nil && f.Priority == nil && f.CategoryID == nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
