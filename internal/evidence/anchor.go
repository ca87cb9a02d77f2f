// Package evidence creates and resolves evidence anchors against the
// checked-out source tree. Anchors bind a claim to an exact file:line
// location with a short content hash; the hash is always derived here from
// ground truth, never copied from a producer.
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"pta/internal/model"
)

// hashLen is the number of hex characters kept from the snippet digest.
const hashLen = 12

// SnippetHash returns the short digest of a snippet's literal text.
func SnippetHash(snippet string) string {
	sum := sha256.Sum256([]byte(snippet))
	return hex.EncodeToString(sum[:])[:hashLen]
}

// MakeAnchor builds an anchor for a snippet spanning lineStart..lineEnd.
func MakeAnchor(path string, lineStart, lineEnd int, snippet string) model.EvidenceAnchor {
	return model.EvidenceAnchor{
		Path:        path,
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		SnippetHash: SnippetHash(snippet),
		Display:     Display(path, lineStart, lineEnd),
	}
}

// Display renders the canonical "path:N" or "path:N-M" location string.
func Display(path string, lineStart, lineEnd int) string {
	if lineStart == lineEnd {
		return fmt.Sprintf("%s:%d", path, lineStart)
	}
	return fmt.Sprintf("%s:%d-%d", path, lineStart, lineEnd)
}
