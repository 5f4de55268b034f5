package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/treecmp/internal/listing"
)

// Compare loads both listings of req and reports how the second differs
// from the first. Both files are loaded even if one of them fails; the
// returned error then joins a *LoadError per failing file and no result is
// produced.
func (e *Engine) Compare(ctx context.Context, req *CompareRequest) (*CompareResult, error) {
	var (
		before, after       *listing.Result
		beforeErr, afterErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		before, beforeErr = e.Load(req.BeforePath)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		after, afterErr = e.Load(req.AfterPath)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := errors.Join(beforeErr, afterErr); err != nil {
		return nil, err
	}

	return Diff(req.BeforePath, before, req.AfterPath, after), nil
}

// Diff computes the differences between two parsed listings.
func Diff(beforePath string, before *listing.Result, afterPath string, after *listing.Result) *CompareResult {
	res := &CompareResult{
		Before:         summarize(beforePath, before),
		After:          summarize(afterPath, after),
		AddedDirs:      after.Dirs.Difference(before.Dirs),
		RemovedDirs:    before.Dirs.Difference(after.Dirs),
		AddedFiles:     after.Files.Difference(before.Files),
		RemovedFiles:   before.Files.Difference(after.Files),
		DirDifference:  after.DirCount() - before.DirCount(),
		FileDifference: after.FileCount() - before.FileCount(),
	}
	res.TotalDifference = res.DirDifference + res.FileDifference
	return res
}

func summarize(path string, r *listing.Result) ListingSummary {
	return ListingSummary{
		Path:    path,
		Dirs:    r.DirCount(),
		Files:   r.FileCount(),
		Skipped: r.Skipped,
	}
}
