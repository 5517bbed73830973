// Package trace derives the identifier watermarked into secure PDFs.
package trace

import (
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

const idLength = 16

// Fingerprint hashes caller identity, device fingerprint and generation time into a
// short hex id. The same inputs always yield the same id.
func Fingerprint(callerID, device string, generatedAt time.Time) string {
	sum := blake2b.Sum256([]byte(strings.Join([]string{
		strings.TrimSpace(callerID),
		strings.TrimSpace(device),
		generatedAt.UTC().Format(time.RFC3339Nano),
	}, "\x00")))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:idLength])
}

// Watermark is the footer line carrying the fingerprint.
func Watermark(fingerprint string, generatedAt time.Time) string {
	return "ID " + fingerprint + " - " + generatedAt.UTC().Format("20060102T150405Z")
}
