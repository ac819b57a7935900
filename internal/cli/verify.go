package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/oaps-proof/internal/proof"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <proof.json> <hash>",
		Short: "Check a proof document against an expected proof hash",
		Long: `Recompute the proof hash of a document and compare it with an expected value.

The expected hash may be given with or without the 0x prefix, in either case.
Exits 0 when the hashes match and 1 when they do not.

Example:
  oaps-proof verify proof.json 0xb8ffb64722137f4b100665a52e3c943f8066e8ab8ba3b427e6f4b404defd82b0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(args[0], args[1])
		},
	}
}

func (a *app) runVerify(path, expected string) error {
	result, err := a.generator().Verify(path, expected)
	if err != nil {
		if a.outputFormat == outputJSON && errors.Is(err, proof.ErrHashMismatch) {
			if werr := writeJSON(a.stdout, newVerifyOutput(result, false)); werr != nil {
				return werr
			}
		}
		return err
	}

	if a.outputFormat == outputJSON {
		return writeJSON(a.stdout, newVerifyOutput(result, true))
	}

	p := newPrinter(a.stdout)
	p.header("OAPS Proof Hash Verified:")
	p.field("Input File", result.Source)
	p.field("Keccak256 Hash", result.Hash)
	return p.err
}
