package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/storage"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

// Persister writes the portfolio document to the blob store after mutations.
// Saves are debounced and fire-and-forget: a mutation is complete once it is
// in memory, and a failed save is logged, never surfaced or rolled back.
type Persister struct {
	store    *store.Store
	adapter  *storage.PortfolioAdapter
	debounce time.Duration
	autoSave bool

	mu          sync.Mutex
	saveTimer   *time.Timer
	savePending bool
}

// NewPersister creates a new Persister.
func NewPersister(st *store.Store, adapter *storage.PortfolioAdapter, debounce time.Duration, autoSave bool) *Persister {
	return &Persister{
		store:    st,
		adapter:  adapter,
		debounce: debounce,
		autoSave: autoSave,
	}
}

// TriggerSave schedules a debounced save. Multiple triggers within the
// debounce period collapse into a single write.
func (p *Persister) TriggerSave() {
	if !p.autoSave {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.saveTimer != nil {
		p.saveTimer.Stop()
	}

	p.savePending = true
	p.saveTimer = time.AfterFunc(p.debounce, func() {
		p.mu.Lock()
		p.savePending = false
		p.mu.Unlock()

		if err := p.adapter.Save(context.Background(), p.store.Snapshot()); err != nil {
			log.Printf("Auto-save failed: %v", err)
		}
	})
}

// Flush cancels any pending debounced save and writes the current document
// immediately. Used on shutdown so the last mutations are not lost to the
// debounce window.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	if p.saveTimer != nil {
		p.saveTimer.Stop()
	}
	p.savePending = false
	p.mu.Unlock()

	return p.adapter.Save(ctx, p.store.Snapshot())
}
