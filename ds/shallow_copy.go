package ds

// ShallowCopy copies the elements of ts into a new slice. A nil slice stays nil.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
