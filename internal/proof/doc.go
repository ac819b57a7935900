// package proof provides high-level functions for producing OAPS proof hashes.
//
// A proof document is read from a file or stream, parsed, canonicalized with the configured
// profile and hashed with Keccak-256. See the crypto package for the underlying functions.
//
// Each document is processed independently, so batches are hashed in parallel with no coordination.
package proof
