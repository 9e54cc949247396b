package review

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/unbound-force/scrutiny/internal/taxonomy"
)

// Assess reviews every file against the selected rules and builds
// the complete project report.
//
// Files are reviewed concurrently with a bounded worker pool; each
// per-file review is a pure function over immutable inputs. Results
// are written by index, so the report always preserves discovery
// order and identical inputs produce identical output.
func Assess(ctx context.Context, rootDir string, files []File, selected []taxonomy.Rule, opts Options) taxonomy.ReviewReport {
	start := time.Now()

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	reviewed := make([]taxonomy.ReviewedFile, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reviewed[i] = ReviewFile(f.Content, f.Path, selected, opts)
			return nil
		})
	}
	// ReviewFile never returns an error; the only failure is caller
	// cancellation, in which case the partial report is discarded.
	if err := g.Wait(); err != nil {
		reviewed = nil
	}

	summary := Aggregate(reviewed, selected)

	return taxonomy.ReviewReport{
		RootDir:         rootDir,
		Files:           reviewed,
		Summary:         summary,
		Recommendations: Recommend(summary, len(selected)),
		Metadata: taxonomy.Metadata{
			ScrutinyVersion: opts.Version,
			Timestamp:       start,
			Duration:        time.Since(start),
		},
	}
}
