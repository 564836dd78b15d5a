package service

import (
	"context"
	"testing"
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/storage"
	"github.com/ocm-tools/ocm-navigator/internal/storage/memory"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

func TestTriggerSaveDebounces(t *testing.T) {
	kv := memory.New()
	st := store.New(nil)
	p := NewPersister(st, storage.NewPortfolioAdapter(kv), 20*time.Millisecond, true)

	st.AddInitiative(domain.CreateInitiativeRequest{Name: "X"})
	p.TriggerSave()
	p.TriggerSave()
	p.TriggerSave()

	// Nothing written inside the debounce window
	if _, found, _ := kv.Get(context.Background(), storage.PortfolioKey); found {
		t.Error("Expected no write before the debounce fires")
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, found, _ := kv.Get(context.Background(), storage.PortfolioKey); found {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Debounced save never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTriggerSaveDisabled(t *testing.T) {
	kv := memory.New()
	st := store.New(nil)
	p := NewPersister(st, storage.NewPortfolioAdapter(kv), time.Millisecond, false)

	p.TriggerSave()
	time.Sleep(20 * time.Millisecond)

	if _, found, _ := kv.Get(context.Background(), storage.PortfolioKey); found {
		t.Error("Expected no write with auto-save disabled")
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	kv := memory.New()
	st := store.New(nil)
	p := NewPersister(st, storage.NewPortfolioAdapter(kv), time.Hour, true)

	st.AddInitiative(domain.CreateInitiativeRequest{Name: "X"})
	p.TriggerSave()

	if err := p.Flush(context.Background()); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if _, found, _ := kv.Get(context.Background(), storage.PortfolioKey); !found {
		t.Error("Expected Flush to write despite the pending debounce")
	}
}
