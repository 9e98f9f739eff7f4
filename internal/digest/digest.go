// Package digest fingerprints build artifacts for log output.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Sum returns the hex-encoded BLAKE3-256 digest of data.
func Sum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Short returns the first 16 hex characters of Sum, enough to tell artifacts apart in a log line.
func Short(data []byte) string {
	return Sum(data)[:16]
}
