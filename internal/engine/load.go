package engine

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/danieljhkim/treecmp/internal/listing"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 content")

// Load reads and parses the listing file at path.
// Failures are returned as *LoadError of kind ErrNotFound or ErrRead.
func (e *Engine) Load(path string) (*listing.Result, error) {
	exists, err := e.fs.Exists(path)
	if err != nil {
		return nil, newLoadError(path, ErrRead, err)
	}
	if !exists {
		return nil, newLoadError(path, ErrNotFound, nil)
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, newLoadError(path, ErrRead, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, newLoadError(path, ErrRead, err)
	}

	result, err := listing.Parse(bytes.NewReader(text), e.rules)
	if err != nil {
		return nil, newLoadError(path, ErrRead, err)
	}
	return result, nil
}

// decode converts listing bytes to UTF-8. A byte order mark selects UTF-8
// or UTF-16 and is removed; without one the content must already be UTF-8.
func decode(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(out) {
		return nil, errInvalidUTF8
	}
	return out, nil
}
