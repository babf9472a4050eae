// Package cache stores rendered reports keyed on the exact analysis input,
// so re-checking an unchanged document skips the engine. The engine is
// deterministic, which is what makes input-hash caching safe.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ReportKey derives a cache key from the document text and its reference
// sources. Any change to either yields a different key.
func ReportKey(text string, references []string) string {
	h := sha256.New()
	h.Write([]byte(text))
	for _, ref := range references {
		h.Write([]byte{0})
		h.Write([]byte(ref))
	}
	return "citeguard:v1:" + hex.EncodeToString(h.Sum(nil))
}
