// crypto package provides the canonicalization and digest functions behind OAPS proof hashes.
//
// A JSON document is parsed into a Value tree, serialized to canonical bytes by Encode
// (sorted object names, no insignificant whitespace, normalized numbers) and hashed with
// Keccak-256 by Digest.
//
// these are low level functions - see the proof package for reading proof files and producing proof hashes.
package crypto
