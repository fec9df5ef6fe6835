package internal

// Reverse reverses s in place and returns it.
func Reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// Shuffle permutes s in place with a Fisher-Yates pass. intn must return a
// uniform value in [0, n).
func Shuffle[T any](s []T, intn func(n int) int) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
