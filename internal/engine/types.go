package engine

// CompareRequest represents a request to compare two listing files.
type CompareRequest struct {
	// BeforePath is the listing taken first.
	BeforePath string

	// AfterPath is the listing taken second.
	AfterPath string
}

// ListingSummary holds the counts of one listing.
type ListingSummary struct {
	Path    string
	Dirs    int
	Files   int
	Skipped int
}

// Total returns the number of directories and files.
func (s ListingSummary) Total() int {
	return s.Dirs + s.Files
}

// CompareResult represents the differences between two listings.
// All path lists are sorted in ascending order.
type CompareResult struct {
	Before ListingSummary
	After  ListingSummary

	// AddedDirs are directories present only in the after listing.
	AddedDirs []string

	// RemovedDirs are directories present only in the before listing.
	RemovedDirs []string

	// AddedFiles are files present only in the after listing.
	AddedFiles []string

	// RemovedFiles are files present only in the before listing.
	RemovedFiles []string

	DirDifference   int
	FileDifference  int
	TotalDifference int
}

// DirsChanged reports whether any directory was added or removed.
func (r *CompareResult) DirsChanged() bool {
	return len(r.AddedDirs) > 0 || len(r.RemovedDirs) > 0
}

// FilesChanged reports whether any file was added or removed.
func (r *CompareResult) FilesChanged() bool {
	return len(r.AddedFiles) > 0 || len(r.RemovedFiles) > 0
}
