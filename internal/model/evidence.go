package model

import (
	"bytes"
	"encoding/json"
)

// EvidenceAnchor binds a claim to an exact source location via a content hash.
// The hash is always recomputed from the checked-out tree by the verifier;
// producer-supplied hashes are never trusted.
type EvidenceAnchor struct {
	Path                string `json:"path"`
	LineStart           int    `json:"line_start"`
	LineEnd             int    `json:"line_end"`
	SnippetHash         string `json:"snippet_hash,omitempty"`
	Display             string `json:"display,omitempty"`
	SnippetHashVerified bool   `json:"snippet_hash_verified"`
	Kind                string `json:"kind,omitempty"` // e.g. "file_exists_index" for advisory anchors
	Note                string `json:"note,omitempty"`
}

// EvidenceEntry is the normalized form of a producer evidence item, which on
// the wire is either a "path:N[-M]" citation string or a structured anchor
// object. Exactly one of Anchor and Raw is set. Entries that never parse stay
// Raw and are excluded from verification but kept visible on the claim.
type EvidenceEntry struct {
	Anchor *EvidenceAnchor
	Raw    string
}

// IsAnchor reports whether the entry carries a structured anchor.
func (e EvidenceEntry) IsAnchor() bool {
	return e.Anchor != nil
}

// UnmarshalJSON accepts either a JSON string or an anchor object.
func (e *EvidenceEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &e.Raw)
	}
	var anchor EvidenceAnchor
	if err := json.Unmarshal(data, &anchor); err != nil {
		// Malformed producer entry: keep the raw text instead of failing.
		e.Raw = string(data)
		return nil
	}
	e.Anchor = &anchor
	return nil
}

// MarshalJSON writes the anchor object, or the raw string for entries that
// never parsed.
func (e EvidenceEntry) MarshalJSON() ([]byte, error) {
	if e.Anchor != nil {
		return json.Marshal(e.Anchor)
	}
	return json.Marshal(e.Raw)
}

// EvidenceList normalizes producer fields that may hold a single citation
// string, a single anchor object, or a list of either.
type EvidenceList []EvidenceEntry

// UnmarshalJSON accepts a scalar entry or an array of entries.
func (l *EvidenceList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var entries []EvidenceEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*l = entries
		return nil
	}
	var entry EvidenceEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	*l = EvidenceList{entry}
	return nil
}

// Anchors returns the structured anchors in the list, skipping raw entries.
func (l EvidenceList) Anchors() []EvidenceAnchor {
	var out []EvidenceAnchor
	for _, e := range l {
		if e.Anchor != nil {
			out = append(out, *e.Anchor)
		}
	}
	return out
}
