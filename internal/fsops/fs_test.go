package fsops

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "tree1.txt")
	if err := os.WriteFile(existing, []byte("├─a\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", existing, true},
		{"existing directory", tmpDir, true},
		{"missing file", filepath.Join(tmpDir, "missing.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRealFS_ReadFile(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "tree.txt")
	want := []byte("D:.\n└─src\n")
	if err := os.WriteFile(path, want, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadFile() = %q, want %q", got, want)
	}

	if _, err := fs.ReadFile(tmpDir); err == nil {
		t.Error("ReadFile() on a directory should fail")
	}
	if _, err := fs.ReadFile(filepath.Join(tmpDir, "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("ReadFile() on missing file error = %v, want not-exist", err)
	}
}

func TestRealFS_ReadDirNames(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	for _, name := range []string{"b.txt", "a.txt", "c.log"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got, err := fs.ReadDirNames(tmpDir)
	if err != nil {
		t.Fatalf("ReadDirNames() error = %v", err)
	}
	want := []string{"a.txt", "b.txt", "c.log", "sub"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadDirNames() = %v, want %v", got, want)
	}

	if _, err := fs.ReadDirNames(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("ReadDirNames() on missing directory should fail")
	}
}

func TestRealFS_ExistsDanglingSymlink(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	link := filepath.Join(tmpDir, "tree.txt")
	if err := os.Symlink(filepath.Join(tmpDir, "gone.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := fs.Exists(link)
	if err != nil {
		t.Fatalf("Exists(%q) error = %v", link, err)
	}
	if got {
		t.Errorf("Exists(%q) = true for a dangling symlink, want false", link)
	}
}
