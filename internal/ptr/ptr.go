package ptr

// To returns a pointer to v. Useful for optional prescription fields like
// target RPE and percent-of-1RM literals.
func To[T any](v T) *T {
	return &v
}
