package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// maxLineSize bounds a single listing line.
const maxLineSize = 1024 * 1024

// Result holds the entries found in one listing.
type Result struct {
	// Dirs holds the directory paths.
	Dirs PathSet

	// Files holds the file paths.
	Files PathSet

	// Lines is the number of lines read.
	Lines int

	// Skipped is the number of lines that produced no entry.
	Skipped int
}

// DirCount returns the number of distinct directories.
func (r *Result) DirCount() int {
	return r.Dirs.Len()
}

// FileCount returns the number of distinct files.
func (r *Result) FileCount() int {
	return r.Files.Len()
}

// Total returns the number of distinct directories and files.
func (r *Result) Total() int {
	return r.DirCount() + r.FileCount()
}

// Parse reads a tree listing from r.
// Lines that are not recognised are skipped; the only error is a read error.
func Parse(r io.Reader, rules Rules) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p := &parser{
		rules: rules,
		result: &Result{
			Dirs:  make(PathSet),
			Files: make(PathSet),
		},
	}
	for sc.Scan() {
		p.result.Lines++
		if !p.parseLine(sc.Text()) {
			p.result.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", p.result.Lines+1, err)
	}
	return p.result, nil
}

// ParseString parses a listing held in memory.
func ParseString(s string, rules Rules) (*Result, error) {
	return Parse(strings.NewReader(s), rules)
}

type parser struct {
	rules  Rules
	stack  pathStack
	result *Result
}

// parseLine classifies one line and reports whether it produced an entry.
func (p *parser) parseLine(line string) bool {
	if _, rest, ok := strings.Cut(line, LineNumberArrow); ok {
		line = rest
	}
	line = strings.TrimRight(line, "\r\n")

	if p.rules.IsBanner(line) {
		return false
	}

	if m := branchPattern.FindStringSubmatch(line); m != nil {
		return p.branch(strings.Count(m[1], string(VerticalBar)), branchPrefixPattern.ReplaceAllString(line, ""))
	}
	if continuationPattern.MatchString(line) {
		return p.continuation(trimIndent(line))
	}
	if !barsOnlyPattern.MatchString(line) {
		return p.root(strings.TrimSpace(line))
	}
	return false
}

// branch handles a "├─name" or "└─name" line at the given level.
func (p *parser) branch(level int, name string) bool {
	if name == "" || p.rules.IsRootMarker(name) {
		return false
	}
	p.stack.truncate(level)
	full := p.stack.join(name)
	if isFileName(lastSegment(name)) {
		p.result.Files.Add(full)
		return true
	}
	p.result.Dirs.Add(full)
	p.stack.push(name)
	return true
}

// continuation handles an indented line without a connector. tree /F prints
// the files of a directory this way, below their parent's connector line.
func (p *parser) continuation(name string) bool {
	if name == "" || !isFileName(name) {
		return false
	}
	p.result.Files.Add(p.stack.join(name))
	return true
}

// root handles an unindented line. A directory here starts a new top-level
// tree.
func (p *parser) root(name string) bool {
	if name == "" || p.rules.IsRootMarker(name) {
		return false
	}
	if isFileName(name) {
		p.result.Files.Add(name)
		return true
	}
	p.result.Dirs.Add(name)
	p.stack.reset(name)
	return true
}

// trimIndent removes the surrounding whitespace and indentation bars.
func trimIndent(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return r == VerticalBar || unicode.IsSpace(r)
	})
}

func lastSegment(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

func isFileName(name string) bool {
	return strings.Contains(name, ".")
}
