package crypto

// MaxDocumentSize is the default maximum allowed size for proof documents, in bytes.
// This limit applies to the raw JSON document before parsing.
//
// It can be overridden with the MAX_DOCUMENT_SIZE environment variable.
const MaxDocumentSize int64 = 10 * 1024 * 1024 // 10MB
