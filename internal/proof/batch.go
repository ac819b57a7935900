package proof

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome for one file of a batch. Exactly one of Result and Err is set.
type BatchItem struct {
	Path   string
	Result *Result
	Err    error
}

// BatchReport holds the items of a batch in input order.
type BatchReport struct {
	RunID uuid.UUID
	Items []BatchItem
}

// Failed returns the number of items that could not be hashed.
func (r *BatchReport) Failed() int {
	n := 0
	for _, item := range r.Items {
		if item.Err != nil {
			n++
		}
	}
	return n
}

// GenerateBatch hashes the given files with up to workers documents in flight.
//
// A failure on one file is recorded on its item and does not stop the batch.
// If ctx is cancelled the files not yet started are marked with the context error
// and the context error is returned along with the partial report.
func (g *Generator) GenerateBatch(ctx context.Context, paths []string, workers int) (*BatchReport, error) {
	if workers < 1 {
		workers = 1
	}

	report := &BatchReport{
		RunID: uuid.New(),
		Items: make([]BatchItem, len(paths)),
	}
	logger := g.logger.With(slog.String("run_id", report.RunID.String()))
	logger.Info("batch started",
		slog.Int("files", len(paths)),
		slog.Int("workers", workers),
		slog.String("profile", g.profile.String()),
	)
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, path := range paths {
		report.Items[i].Path = path

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				report.Items[i].Err = err
				return err
			}

			result, err := g.GenerateFromFile(path)
			if err != nil {
				logger.Warn("failed to hash proof file",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
				report.Items[i].Err = err
				return nil
			}
			report.Items[i].Result = result
			return nil
		})
	}

	err := eg.Wait()

	logger.Info("batch finished",
		slog.Int("files", len(paths)),
		slog.Int("failed", report.Failed()),
		slog.Duration("duration", time.Since(start)),
	)
	return report, err
}
