package state

// Identifiable is implemented by every entity kept in an id-keyed collection.
type Identifiable interface {
	Key() string
}

// UpsertByID returns items with item replacing the existing entry sharing
// its id, preserving position, or appended when no entry matches. This is
// the one merge rule every collection uses; id uniqueness within a
// collection follows from it.
func UpsertByID[T Identifiable](items []T, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Key() == item.Key() {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// RemoveByID returns items without the entry sharing id. A missing id is a
// no-op and returns the input unchanged.
func RemoveByID[T Identifiable](items []T, id string) []T {
	idx := -1
	for i := range items {
		if items[i].Key() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
