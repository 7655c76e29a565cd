package ds

// MakeChunks try to group elements within a slice into smaller "chunk",
// each contains n elements. A trailing chunk shorter than n is dropped.
// For example,
//
//	MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// should return this exact value:
//
//	[][]int{{1, 2}, {3, 4}}
func MakeChunks[T any](ts []T, n int) [][]T {
	if n <= 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, len(ts)/n)
	for i := 0; i+n <= len(ts); i += n {
		chunks = append(chunks, ts[i:i+n:i+n])
	}
	return chunks
}
