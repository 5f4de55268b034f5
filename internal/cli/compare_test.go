package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCompare_FullReport(t *testing.T) {
	dir := t.TempDir()
	before := writeListing(t, dir, "tree1.txt", "D:.\n├─a\n│      x.txt\n")
	after := writeListing(t, dir, "tree2.txt", "D:.\n├─a\n│      y.txt\n├─b\n")

	output, err := execute(t, before, after)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	sep := strings.Repeat("=", 60)
	want := strings.Join([]string{
		"Comparing tree files:",
		"File 1: " + before,
		"File 2: " + after,
		sep,
		"File 1 statistics:",
		"  - Directories: 1",
		"  - Files: 1",
		"  - Total: 2",
		"",
		"File 2 statistics:",
		"  - Directories: 2",
		"  - Files: 1",
		"  - Total: 3",
		"",
		sep,
		"Detailed change analysis:",
		sep,
		"",
		"[+] Added directories (1):",
		"    + b",
		"",
		"[+] Added files (1):",
		"    + a/y.txt",
		"",
		"[-] Removed files (1):",
		"    - a/x.txt",
		"",
		sep,
		"Summary:",
		sep,
		"Directories: +1 (1 → 2)",
		"Files: +0 (1 → 1)",
		"Total: +1 (2 → 3)",
		"",
	}, "\n")

	if output != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", output, want)
	}
}

func TestCompare_SameFileReportsNoChanges(t *testing.T) {
	path := writeListing(t, t.TempDir(), "tree.txt", "D:.\n├─src\n│      main.go\n└─docs\n")

	output, err := execute(t, path, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"[Directories] No changes",
		"[Files] No changes",
		"Directories: +0 (2 → 2)",
		"Files: +0 (1 → 1)",
		"Total: +0 (3 → 3)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "[+]") || strings.Contains(output, "[-]") {
		t.Errorf("expected no change lists:\n%s", output)
	}
}

func TestCompare_RemovedSortedAndNegativeDelta(t *testing.T) {
	dir := t.TempDir()
	before := writeListing(t, dir, "tree1.txt", "├─zeta\n├─alpha\n├─mid\n")
	after := writeListing(t, dir, "tree2.txt", "├─mid\n")

	output, err := execute(t, before, after)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "[-] Removed directories (2):\n    - alpha\n    - zeta\n") {
		t.Errorf("expected sorted removed directories:\n%s", output)
	}
	if !strings.Contains(output, "Directories: -2 (3 → 1)") {
		t.Errorf("expected negative directory delta:\n%s", output)
	}
	if !strings.Contains(output, "[Files] No changes") {
		t.Errorf("expected no file changes:\n%s", output)
	}
}

func TestCompare_MissingFile(t *testing.T) {
	dir := t.TempDir()
	before := writeListing(t, dir, "tree1.txt", "├─a\n")
	missing := filepath.Join(dir, "missing.txt")

	output, err := execute(t, before, missing)
	if err != nil {
		t.Fatalf("missing input should be reported, not returned: %v", err)
	}

	if !strings.Contains(output, "Error: file "+missing+" does not exist") {
		t.Errorf("expected missing file message:\n%s", output)
	}
	if strings.Contains(output, "statistics") || strings.Contains(output, "Summary") {
		t.Errorf("no report expected for a missing input:\n%s", output)
	}
}

func TestCompare_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	before := writeListing(t, dir, "tree1.txt", "├─a\n")

	output, err := execute(t, before, dir)
	if err != nil {
		t.Fatalf("unreadable input should be reported, not returned: %v", err)
	}

	if !strings.Contains(output, "Error reading file "+dir+":") {
		t.Errorf("expected read error message:\n%s", output)
	}
}

func TestCompare_SkipPrefixFlag(t *testing.T) {
	dir := t.TempDir()
	before := writeListing(t, dir, "tree1.txt", "├─a\n")
	after := writeListing(t, dir, "tree2.txt", "Generated by backup job\n├─a\n")

	output, err := execute(t, "--skip-prefix", "Generated", before, after)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "[Directories] No changes") {
		t.Errorf("expected banner to be skipped:\n%s", output)
	}
}

func TestStats(t *testing.T) {
	path := writeListing(t, t.TempDir(), "tree.txt", "D:.\n├─src\n│      main.go\n│\n└─docs\n")

	output, err := execute(t, "stats", "--list", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"  - Directories: 2\n",
		"  - Files: 1\n",
		"  - Total: 3\n",
		"  - Skipped lines: 2\n",
		"Directories (2):\n    docs\n    src\n",
		"Files (1):\n    src/main.go\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestStats_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	output, err := execute(t, "stats", missing)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, "does not exist") {
		t.Errorf("expected missing file message:\n%s", output)
	}
}
