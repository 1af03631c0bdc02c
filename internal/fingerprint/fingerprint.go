// Package fingerprint identifies table snapshots by a hash of their JSON form.
package fingerprint

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Fingerprint is the SHA-256 of a JSON-encoded table snapshot
type Fingerprint struct {
	Hash string `json:"hash"`
}

// Compute fingerprints a table snapshot. Any JSON-encodable value is accepted,
// typically an *ir.Table or a *tableschema.Table.
func Compute(table any) (*Fingerprint, error) {
	data, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("failed to compute table hash: %w", err)
	}

	hash := sha256.Sum256(data)
	return &Fingerprint{Hash: fmt.Sprintf("%x", hash)}, nil
}

// Short returns the first eight hex digits of the hash
func (f *Fingerprint) Short() string {
	if len(f.Hash) >= 8 {
		return f.Hash[:8]
	}
	return f.Hash
}

// String returns a human-readable representation of the fingerprint
func (f *Fingerprint) String() string {
	return fmt.Sprintf("Table fingerprint: %s", f.Short())
}

// Compare returns an error when two fingerprints differ
func Compare(expected, actual *Fingerprint) error {
	if expected.Hash == actual.Hash {
		return nil
	}
	return fmt.Errorf("table fingerprint mismatch - expected: %s, actual: %s",
		preview(expected.Hash), preview(actual.Hash))
}

func preview(hash string) string {
	if len(hash) > 16 {
		return hash[:16]
	}
	return hash
}
