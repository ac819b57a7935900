package cli

import (
	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
	"github.com/information-sharing-networks/oaps-proof/internal/proof"
)

func newCanonicalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "canonicalize <proof.json|->",
		Short: "Print the canonical form of a JSON document",
		Long: `Write the canonical bytes of a JSON document to stdout, exactly as they are hashed.

No trailing newline is added. Use - to read the document from stdin.

Example:
  oaps-proof canonicalize proof.json | sha256sum
  cat proof.json | oaps-proof canonicalize --profile jcs -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCanonicalize(args[0])
		},
	}
}

func (a *app) runCanonicalize(path string) error {
	var (
		result *proof.Result
		err    error
	)
	if path == "-" {
		result, err = a.generator().GenerateFromReader("stdin", a.stdin)
	} else {
		result, err = a.generator().GenerateFromFile(path)
	}
	if err != nil {
		return err
	}

	if a.outputFormat == outputJSON {
		return writeJSON(a.stdout, newHashOutput(result))
	}

	if _, err := a.stdout.Write(result.Canonical); err != nil {
		return crypto.WrapIOError(err, "failed to write canonical JSON")
	}
	return nil
}
