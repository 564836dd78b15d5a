// Package storage defines the blob store the portfolio is persisted to.
package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

// PortfolioKey is the key the whole document is stored under.
const PortfolioKey = "ocm-nav-data"

// KV is a generic get/set blob store. Implementations must be safe for
// concurrent use.
type KV interface {
	// Get returns the value for key, with found=false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Close closes the store.
	Close() error
}

// PortfolioAdapter persists the whole portfolio document as one JSON blob.
type PortfolioAdapter struct {
	kv KV
}

// NewPortfolioAdapter wraps a KV store.
func NewPortfolioAdapter(kv KV) *PortfolioAdapter {
	return &PortfolioAdapter{kv: kv}
}

// Load returns the stored document, or nil when none exists or the stored
// payload cannot be decoded. Both cases mean "start empty"; decode failures
// are logged, never surfaced.
func (a *PortfolioAdapter) Load(ctx context.Context) *domain.Portfolio {
	value, found, err := a.kv.Get(ctx, PortfolioKey)
	if err != nil {
		log.Printf("Loading portfolio failed: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	var p domain.Portfolio
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		log.Printf("Stored portfolio is not decodable, starting empty: %v", err)
		return nil
	}
	p.Normalize()
	return &p
}

// Save serializes the document and writes it to the store.
func (a *PortfolioAdapter) Save(ctx context.Context, p *domain.Portfolio) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, PortfolioKey, string(value))
}
