// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slicex/slicex.go
// Summary: Generic slice helpers: chunking, grouping, de-duplication, cycling.

// Package slicex holds generic slice helpers missing from the slices package.
package slicex

// Chunked splits s into consecutive chunks of at most size elements. The
// last chunk may be shorter. A size below 1 returns nil.
func Chunked[S ~[]E, E any](s S, size int) []S {
	if size < 1 {
		return nil
	}
	chunks := make([]S, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end:end])
	}
	return chunks
}

// GroupBy buckets elements by key, preserving their relative order.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K]S {
	groups := make(map[K]S)
	for _, e := range s {
		k := key(e)
		groups[k] = append(groups[k], e)
	}
	return groups
}

// Distinct returns the elements of s without duplicates, keeping the first
// occurrence of each.
func Distinct[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Next returns the element after current in cases, wrapping from the last
// back to the first. When current is not in cases the first element is
// returned; an empty cases yields the zero value.
func Next[S ~[]E, E comparable](cases S, current E) E {
	if len(cases) == 0 {
		var zero E
		return zero
	}
	for i, c := range cases {
		if c == current {
			return cases[(i+1)%len(cases)]
		}
	}
	return cases[0]
}

// Advance moves *current to Next(cases, *current).
func Advance[S ~[]E, E comparable](cases S, current *E) {
	*current = Next(cases, *current)
}
