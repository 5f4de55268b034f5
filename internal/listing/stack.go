package listing

import "strings"

// pathStack holds the directory names above the line being scanned.
type pathStack []string

// truncate drops every ancestor deeper than level.
func (s *pathStack) truncate(level int) {
	if level < len(*s) {
		*s = (*s)[:level]
	}
}

func (s *pathStack) push(name string) {
	*s = append(*s, name)
}

// reset replaces the stack with a single top-level directory.
func (s *pathStack) reset(name string) {
	*s = append((*s)[:0], name)
}

// join returns the path of name below the current ancestors.
func (s pathStack) join(name string) string {
	if len(s) == 0 {
		return name
	}
	return strings.Join(s, PathSeparator) + PathSeparator + name
}
