package integration

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/danieljhkim/treecmp/internal/engine"
	"github.com/danieljhkim/treecmp/internal/listing"
)

// testFS is a filesystem implementation that keeps listing files in memory
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// addFile stores data at p and registers its parent directories.
func (fs *testFS) addFile(p string, data []byte) {
	fs.files[p] = data
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		fs.dirs[dir] = true
	}
}

func (fs *testFS) Exists(p string) (bool, error) {
	_, hasFile := fs.files[p]
	return hasFile || fs.dirs[p], nil
}

func (fs *testFS) ReadFile(p string) ([]byte, error) {
	if data, ok := fs.files[p]; ok {
		return data, nil
	}
	if fs.dirs[p] {
		return nil, &os.PathError{Op: "read", Path: p, Err: os.ErrInvalid}
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ReadDirNames(dir string) ([]string, error) {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	seen := make(map[string]bool)
	for p := range fs.files {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			name, _, _ := strings.Cut(rest, "/")
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// newTestEngine creates an engine backed by fs with the default rules.
func newTestEngine(fs *testFS) *engine.Engine {
	return engine.New(fs, listing.DefaultRules())
}

// utf16LE encodes s as UTF-16LE with a byte order mark, the way PowerShell
// redirects tree output.
func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			hi, lo := 0xD800+(r>>10), 0xDC00+(r&0x3FF)
			out = append(out, byte(hi), byte(hi>>8), byte(lo), byte(lo>>8))
			continue
		}
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}
