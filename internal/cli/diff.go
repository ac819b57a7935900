package cli

import (
	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/oaps-proof/internal/proof"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from.json> <to.json>",
		Short: "Compare the canonical forms of two proof documents",
		Long: `Canonicalize two documents and report whether they produce the same proof hash.

When they differ, the canonical JSON is shown with deletions marked [-text-] and
insertions marked {+text+}.

Example:
  oaps-proof diff proof-v1.json proof-v2.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(args[0], args[1])
		},
	}
}

func (a *app) runDiff(fromPath, toPath string) error {
	g := a.generator()

	from, err := g.GenerateFromFile(fromPath)
	if err != nil {
		return err
	}
	to, err := g.GenerateFromFile(toPath)
	if err != nil {
		return err
	}

	segments := proof.Diff(from, to)

	if a.outputFormat == outputJSON {
		out := diffOutput{
			Identical: segments == nil,
			From:      newHashOutput(from),
			To:        newHashOutput(to),
		}
		for _, s := range segments {
			out.Segments = append(out.Segments, diffSegmentOutput{Op: diffOpName(s.Op), Text: s.Text})
		}
		return writeJSON(a.stdout, out)
	}

	p := newPrinter(a.stdout)
	if segments == nil {
		p.header("Canonical forms are identical:")
	} else {
		p.failure("Canonical forms differ:")
	}
	p.field("From", from.Source)
	p.field("From Hash", from.Hash)
	p.field("To", to.Source)
	p.field("To Hash", to.Hash)
	if segments != nil {
		p.segments(segments)
	}
	return p.err
}
