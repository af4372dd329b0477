package lcs

// IsSubsequence reports whether s can be obtained from v by deleting zero or
// more elements. Greedy scan, O(len(v)).
func IsSubsequence[T comparable](s, v []T) bool {
	i := 0
	for j := 0; i < len(s) && j < len(v); j++ {
		if s[i] == v[j] {
			i++
		}
	}

	return i == len(s)
}

// IsCommonSubsequence reports whether s is a subsequence of both x and y.
func IsCommonSubsequence[T comparable](s, x, y []T) bool {
	return IsSubsequence(s, x) && IsSubsequence(s, y)
}
