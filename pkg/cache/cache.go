package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// WindowKeyOpts identifies a window of a temporal graph.
type WindowKeyOpts struct {
	T     int `json:"t"`
	Delta int `json:"delta"`
}

// Keyer derives cache keys for each artifact kind.
type Keyer interface {
	// DifferentialKey is the key of a window's Cytoscape elements.
	DifferentialKey(graphHash string, opts WindowKeyOpts) string
	// AnalysisKey is the key of a full analysis report.
	AnalysisKey(graphHash string, opts WindowKeyOpts) string
	// ExpansionKey is the key of the whole-timeline expansion.
	ExpansionKey(graphHash string) string
}

// DefaultKeyer produces keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) DifferentialKey(graphHash string, opts WindowKeyOpts) string {
	return hashKey("differential", graphHash, opts)
}

func (DefaultKeyer) AnalysisKey(graphHash string, opts WindowKeyOpts) string {
	return hashKey("analysis", graphHash, opts)
}

func (DefaultKeyer) ExpansionKey(graphHash string) string {
	return hashKey("expansion", graphHash)
}

// GetJSON loads key and decodes it into v. It reports false on a miss.
// Entries that fail to decode are deleted and reported as misses.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
