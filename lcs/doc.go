// Package lcs computes longest-common-subsequence statistics over every
// prefix pair of two sequences, with concrete reconstructions and validators.
//
// 🚀 What is it?
//
//	For sequences X (length M) and Y (length N) an Analysis eagerly builds:
//	  • the length table llcs[m][n] = |LCS(X[0..m), Y[0..n))| for all m≤M, n≤N
//	  • the count table  nlcs[m][n] = number of distinct maximal (m,n)-matchings
//
//	and then answers, for any prefix pair:
//	  • the LCS length (O(1))
//	  • one concrete LCS and one maximal matching (O(m+n) backward walk)
//	  • whether a caller-supplied matching is valid / maximal
//
// A matching (f, g) is a pair of strictly increasing index lists with
// X[f[k]] = Y[g[k]]. It is maximal when its length equals llcs[m][n].
//
// ✨ Key features:
//   - generic over any comparable symbol type (runes via NewStrings)
//   - deterministic tie-breaking: on equal neighbours the walk moves left (j-1)
//   - subsequence and matching reconstruction share one walker, so they agree
//   - overflow-checked uint64 counts, or arbitrary precision via CountBig
//   - the raw lattice-path recurrence is available separately (LatticePaths)
//
// ⚙️ Usage:
//
//	a, err := lcs.NewStrings("ABC", "ACB", lcs.DefaultOptions())
//	if err != nil { ... }
//	a.Length()                 // 2
//	string(a.Subsequence())    // "AC"
//	a.MaxMatching()            // {F:[0 2] G:[0 1]}
//	a.NumMaxMatchings()        // 2, nil
//
// Performance:
//
//   - Construction: O(M·N) time and memory per table.
//   - Queries: O(1) lookups, O(m+n) reconstruction, O(k) validation.
//
// Concurrency: an Analysis is immutable once New returns; all methods are
// safe for concurrent use.
package lcs
