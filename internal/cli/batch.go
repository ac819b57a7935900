package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
	"github.com/information-sharing-networks/oaps-proof/internal/proof"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <proof.json>...",
		Short: "Hash several proof documents in parallel",
		Long: `Compute the proof hash of every file given, printing one line per file in argument order.

A file that cannot be hashed does not stop the others. The command exits 1 if any file failed.

Example:
  oaps-proof batch --workers 4 proofs/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 {
				return fmt.Errorf("invalid --workers %d (must be 0 or more)", workers)
			}
			if workers == 0 {
				workers = a.cfg.Workers()
			}
			return a.runBatch(cmd, args, workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of files hashed concurrently (default from BATCH_WORKERS)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, paths []string, workers int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := a.generator().GenerateBatch(ctx, paths, workers)
	if err != nil {
		return fmt.Errorf("batch %s interrupted: %w", report.RunID, err)
	}

	if a.outputFormat == outputJSON {
		out := batchOutput{
			RunID:   report.RunID.String(),
			Profile: a.profile().String(),
			Files:   len(report.Items),
			Failed:  report.Failed(),
			Results: make([]batchItemOutput, len(report.Items)),
		}
		for i, item := range report.Items {
			out.Results[i] = batchItemOutput{InputFile: item.Path}
			if item.Err != nil {
				out.Results[i].Error = item.Err.Error()
				out.Results[i].ErrorCode = string(crypto.CodeOf(item.Err))
				continue
			}
			out.Results[i].Hash = item.Result.Hash
		}
		if err := writeJSON(a.stdout, out); err != nil {
			return err
		}
	} else {
		if err := a.printBatch(report); err != nil {
			return err
		}
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files could not be hashed", failed, len(report.Items))
	}
	return nil
}

// printBatch writes "<hash>  <path>" for each hashed file and "FAILED  <path>: <error>" otherwise.
func (a *app) printBatch(report *proof.BatchReport) error {
	p := newPrinter(a.stdout)
	for _, item := range report.Items {
		if item.Err != nil {
			p.printf("%s  %s: %v\n", p.bad.Sprint("FAILED"), item.Path, item.Err)
			continue
		}
		p.printf("%s  %s\n", item.Result.Hash, item.Path)
	}
	return p.err
}
