package proof

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
)

// Generator produces proof hashes for JSON documents.
type Generator struct {
	profile         crypto.Profile
	maxDocumentSize int64
	logger          *slog.Logger
}

// NewGenerator creates a Generator.
// A maxDocumentSize of 0 or less uses crypto.MaxDocumentSize; a nil logger uses slog.Default().
func NewGenerator(profile crypto.Profile, maxDocumentSize int64, logger *slog.Logger) *Generator {
	if maxDocumentSize <= 0 {
		maxDocumentSize = crypto.MaxDocumentSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		profile:         profile,
		maxDocumentSize: maxDocumentSize,
		logger:          logger,
	}
}

func (g *Generator) Profile() crypto.Profile { return g.profile }

// Result is the outcome of hashing one proof document.
type Result struct {
	// Source is the file path or stream name the document was read from
	Source string

	Profile crypto.Profile

	// Canonical is the canonical encoding the hash was computed over
	Canonical []byte

	// Hash is "0x" + 64 lowercase hex characters
	Hash string
}

// Preview returns the first n characters of the canonical JSON and whether it was truncated.
func (r *Result) Preview(n int) (string, bool) {
	if n < 0 || utf8.RuneCount(r.Canonical) <= n {
		return string(r.Canonical), false
	}
	b := r.Canonical
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRune(b)
		b = b[size:]
	}
	return string(r.Canonical[:len(r.Canonical)-len(b)]), true
}

// GenerateFromFile reads the proof document at path and returns its proof hash.
//
// Returns an I/O error if the file cannot be read or is larger than the configured maximum,
// a parse error if it is not valid JSON and a malformed input error if it cannot be canonicalized.
func (g *Generator) GenerateFromFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, crypto.WrapIOError(err, "failed to open proof file")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, crypto.WrapIOError(err, "failed to stat proof file")
	}
	if info.IsDir() {
		return nil, crypto.NewIOError(fmt.Sprintf("%s is a directory", path))
	}
	if info.Size() > g.maxDocumentSize {
		return nil, crypto.NewIOError(fmt.Sprintf("%s is %d bytes, exceeds maximum document size (%d bytes)",
			path, info.Size(), g.maxDocumentSize))
	}

	return g.GenerateFromReader(path, file)
}

// GenerateFromReader reads a proof document from r and returns its proof hash.
// name identifies the stream in the result and in error messages.
func (g *Generator) GenerateFromReader(name string, r io.Reader) (*Result, error) {
	// read one byte past the limit to detect oversized streams
	data, err := io.ReadAll(io.LimitReader(r, g.maxDocumentSize+1))
	if err != nil {
		return nil, crypto.WrapIOError(err, fmt.Sprintf("failed to read %s", name))
	}
	if int64(len(data)) > g.maxDocumentSize {
		return nil, crypto.NewIOError(fmt.Sprintf("%s exceeds maximum document size (%d bytes)", name, g.maxDocumentSize))
	}

	return g.GenerateFromBytes(name, data)
}

// GenerateFromBytes returns the proof hash of an in-memory JSON document.
func (g *Generator) GenerateFromBytes(name string, data []byte) (*Result, error) {
	start := time.Now()

	value, err := crypto.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	canonical, err := crypto.EncodeWithProfile(value, g.profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	result := &Result{
		Source:    name,
		Profile:   g.profile,
		Canonical: canonical,
		Hash:      crypto.Digest(canonical),
	}

	g.logger.Debug("proof hash generated",
		slog.String("source", name),
		slog.String("profile", g.profile.String()),
		slog.Int("input_bytes", len(data)),
		slog.Int("canonical_bytes", len(canonical)),
		slog.String("hash", result.Hash),
		slog.Duration("duration", time.Since(start)),
	)
	return result, nil
}
