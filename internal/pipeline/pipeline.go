package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"doc_analyzer/internal/analyzer"
)

type AnalyzeFunc func(ctx context.Context, path string) (*analyzer.Result, error)

// Outcome is the result of analyzing one path. Exactly one of Result and Err
// is set.
type Outcome struct {
	Path   string
	Result *analyzer.Result
	Err    error
}

func AnalyzeFiles(ctx context.Context, paths []string, workers int, fn AnalyzeFunc) []Outcome {
	if len(paths) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	out := make([]Outcome, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, p := range paths {
		i, p := i, p
		out[i].Path = p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			res, err := fn(ctx, p)
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Result = res
			return nil
		})
	}
	_ = g.Wait()
	return out
}
