package listing

import (
	"regexp"
	"strings"
)

const (
	// LineNumberArrow separates the line number prefix some viewers add
	// ("12→") from the listing text.
	LineNumberArrow = "→"

	// VerticalBar marks one level of indentation.
	VerticalBar = '│'

	// PathSeparator joins the names of a path.
	PathSeparator = "/"
)

var (
	// \p{Z} adds the Unicode spaces (U+00A0, U+3000) that \s leaves out.
	branchPattern       = regexp.MustCompile(`^([│\p{Z}\s]*)[├└]─`)
	branchPrefixPattern = regexp.MustCompile(`^[│\p{Z}\s]*[├└]─+[\p{Z}\s]*`)
	continuationPattern = regexp.MustCompile(`^[│\p{Z}\s]+[^├└│\p{Z}\s]`)
	barsOnlyPattern     = regexp.MustCompile(`^[│\p{Z}\s]*$`)
)

// Rules configures which lines of a listing are banners rather than entries.
type Rules struct {
	// SkipPrefixes lists line prefixes of volume label and prompt lines.
	SkipPrefixes []string

	// SkipSubstrings lists fragments of the PATH banner and command echo.
	SkipSubstrings []string

	// RootBanner matches the absolute root path tree prints when it is
	// given an explicit directory.
	RootBanner *regexp.Regexp

	// RootMarker matches the placeholder tree prints for the current
	// directory ("D:.").
	RootMarker *regexp.Regexp
}

// DefaultRules returns the rules for listings from Chinese and English
// Windows consoles.
func DefaultRules() Rules {
	return Rules{
		SkipPrefixes: []string{
			"卷",
			"Volume serial number",
			"PS ",
		},
		SkipSubstrings: []string{
			"PATH 列表",
			"Folder PATH listing",
			">tree",
		},
		RootBanner: regexp.MustCompile(`^[A-Za-z]:\\`),
		RootMarker: regexp.MustCompile(`^[A-Za-z]:\.$`),
	}
}

// WithSkipPrefixes returns a copy of r that also skips lines starting with
// any of prefixes. Empty prefixes are ignored.
func (r Rules) WithSkipPrefixes(prefixes ...string) Rules {
	out := r
	out.SkipPrefixes = append([]string(nil), r.SkipPrefixes...)
	for _, p := range prefixes {
		if p != "" {
			out.SkipPrefixes = append(out.SkipPrefixes, p)
		}
	}
	return out
}

// IsBanner reports whether line is blank or a known header line.
func (r Rules) IsBanner(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	for _, p := range r.SkipPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	for _, s := range r.SkipSubstrings {
		if strings.Contains(line, s) {
			return true
		}
	}
	return r.RootBanner != nil && r.RootBanner.MatchString(line)
}

// IsRootMarker reports whether name is the current-directory placeholder.
func (r Rules) IsRootMarker(name string) bool {
	return r.RootMarker != nil && r.RootMarker.MatchString(name)
}
