// Package lcskit is your toolkit for longest common subsequences: lengths,
// one concrete LCS, one maximal matching, and the exact number of distinct
// maximal matchings, for every prefix pair of two sequences.
//
// 🚀 What is lcskit?
//
//	A small, generic, dependency-light library that brings together:
//		• Length table: llcs[m][n] for all prefixes, built once in O(M·N)
//		• Reconstruction: one LCS and its matching, deterministic tie-break
//		• Counting: distinct maximal matchings in uint64 (overflow reported) or big.Int
//		• Validation: check caller-supplied matchings, with every violated rule
//		• Rendering: the classic bottom-up ASCII table
//
// ✨ Why choose lcskit?
//
//   - Generic – any comparable symbol type, strings decoded as runes
//   - Honest counts – overflow is an error, never a silent wrap
//   - Immutable – an Analysis is safe for concurrent readers once built
//
// Everything is organized under two subpackages and one command:
//
//	table/    bounds-checked 2-D grids, read-only views & the ASCII renderer
//	lcs/      Analysis: lengths, counts, reconstruction & validation
//	cmd/lcs/  command-line front end (text, json, yaml output)
//
// Quick example:
//
//	a, _ := lcs.NewStrings("AGCAT", "GAC", lcs.DefaultOptions())
//	a.Length()                // 2
//	string(a.Subsequence())   // "GA"
//	cnt, _ := a.NumMaxMatchings() // 3
//
//	go get github.com/katalvlaran/lcskit/lcs
package lcskit
