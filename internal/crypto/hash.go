// this file provides the Keccak-256 proof digest.
//
// OAPS proof hashes use the original Keccak submission's padding (as used by Ethereum), not
// NIST SHA3-256: the two produce different digests for the same input. Only one implementation
// is used, there is no runtime fallback.
//
// Digests are rendered as "0x" followed by 64 lowercase hex characters.

package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	// DigestSize is the size of a Keccak-256 digest in bytes.
	DigestSize = 32

	// DigestPrefix is prepended to the hex encoded digest.
	DigestPrefix = "0x"
)

// Keccak256 returns the Keccak-256 digest of data.
func Keccak256(data []byte) [DigestSize]byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)

	var sum [DigestSize]byte
	hasher.Sum(sum[:0])
	return sum
}

// Digest returns the Keccak-256 digest of data as "0x" + 64 lowercase hex characters.
//
// Use this for canonical JSON produced by Encode.
func Digest(data []byte) string {
	sum := Keccak256(data)
	return FormatDigest(sum)
}

// FormatDigest renders a digest as "0x" + 64 lowercase hex characters.
func FormatDigest(sum [DigestSize]byte) string {
	return DigestPrefix + hex.EncodeToString(sum[:])
}

// ParseDigest parses a hex encoded Keccak-256 digest.
// The 0x prefix is optional and hex digits are case-insensitive.
func ParseDigest(s string) ([DigestSize]byte, error) {
	var sum [DigestSize]byte

	h := strings.TrimSpace(s)
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if len(h) != hex.EncodedLen(DigestSize) {
		return sum, NewMalformedInputError(fmt.Sprintf("digest must be %d hex characters, got %d",
			hex.EncodedLen(DigestSize), len(h)))
	}
	if _, err := hex.Decode(sum[:], []byte(h)); err != nil {
		return sum, WrapMalformedInputError(err, "digest is not valid hex")
	}
	return sum, nil
}

// VerifyDigest reports whether data hashes to the expected digest.
// Returns false if expected is not a well-formed digest.
func VerifyDigest(data []byte, expected string) bool {
	want, err := ParseDigest(expected)
	if err != nil {
		return false
	}
	got := Keccak256(data)
	return subtle.ConstantTimeCompare(got[:], want[:]) == 1
}
