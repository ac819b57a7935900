package proof

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
)

// ErrHashMismatch is returned by Verify when a document does not hash to the expected value.
var ErrHashMismatch = errors.New("proof hash mismatch")

// Verify hashes the proof document at path and compares the result with expected.
//
// expected may be given with or without the 0x prefix, in any case.
// A malformed expected hash is a malformed input error; a well-formed hash that does not match
// returns the computed result together with an error wrapping ErrHashMismatch.
func (g *Generator) Verify(path, expected string) (*Result, error) {
	want, err := crypto.ParseDigest(expected)
	if err != nil {
		return nil, fmt.Errorf("expected hash: %w", err)
	}

	result, err := g.GenerateFromFile(path)
	if err != nil {
		return nil, err
	}

	if !crypto.VerifyDigest(result.Canonical, expected) {
		g.logger.Info("proof hash mismatch",
			slog.String("source", path),
			slog.String("expected", crypto.FormatDigest(want)),
			slog.String("actual", result.Hash),
		)
		return result, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, crypto.FormatDigest(want), result.Hash)
	}
	return result, nil
}
