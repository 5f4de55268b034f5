package listing

import "slices"

// PathSet is a set of slash-joined relative paths.
type PathSet map[string]struct{}

// NewPathSet returns a set holding paths.
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path. Adding a path twice has no effect.
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether path is in the set.
func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of distinct paths.
func (s PathSet) Len() int {
	return len(s)
}

// Sorted returns the paths in ascending order.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Difference returns, in ascending order, the paths of s missing from other.
func (s PathSet) Difference(other PathSet) []string {
	out := make([]string, 0)
	for p := range s {
		if !other.Has(p) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}
