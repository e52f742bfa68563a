// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locus

import "sort"

// Set is the per-genome working set of candidate loci. Insertion folds each
// incoming descriptor into the first existing entry it overlaps; otherwise
// the descriptor is appended. The set is append-only apart from merges, and
// a merge only ever widens an entry's location.
//
// A Set is not safe for concurrent use; callers that fan out searches guard
// Insert with their own lock.
type Set struct {
	entries []Descriptor
}

// NewSet returns an empty working set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of distinct loci currently in the set.
func (s *Set) Len() int {
	return len(s.entries)
}

// Insert folds d into the set. It scans the current entries in insertion
// order and merges d into the first one that accepts it; at most one merge
// happens per insertion. If nothing accepts, d becomes a new entry. Insert
// reports whether d was merged into an existing entry.
func (s *Set) Insert(d Descriptor) bool {
	for i := range s.entries {
		if s.entries[i].TryMerge(d) {
			return true
		}
	}
	s.entries = append(s.entries, d)
	return false
}

// Final returns the set's descriptors sorted in canonical order. The slice
// is a copy, so the caller can hold it after the working set is discarded.
func (s *Set) Final() []Descriptor {
	out := make([]Descriptor, len(s.entries))
	copy(out, s.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}
