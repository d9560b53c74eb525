package util

// Split breaks items into ordered chunks of at most limit elements each. Concatenating the chunks
// yields the input again. An empty input produces no chunks, and a non-positive limit keeps every
// item in a single chunk.
func Split[T any](items []T, limit int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if limit <= 0 {
		return [][]T{items}
	}

	var chunk []T
	chunks := make([][]T, 0, (len(items)+limit-1)/limit)
	for len(items) >= limit {
		chunk, items = items[:limit:limit], items[limit:]
		chunks = append(chunks, chunk)
	}
	if len(items) > 0 {
		chunks = append(chunks, items)
	}

	return chunks
}

// Difference returns the elements in `a` that aren't in `b`.
func Difference(a, b []string) []string {
	mb := make(map[string]bool, len(b))
	for _, x := range b {
		mb[x] = true
	}

	var diff []string
	for _, x := range a {
		if _, found := mb[x]; !found {
			diff = append(diff, x)
		}
	}

	return diff
}
