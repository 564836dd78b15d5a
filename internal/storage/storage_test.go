package storage

import (
	"context"
	"testing"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/storage/memory"
)

func TestLoadMissingReturnsNil(t *testing.T) {
	a := NewPortfolioAdapter(memory.New())
	if p := a.Load(context.Background()); p != nil {
		t.Errorf("Expected nil for empty store, got %+v", p)
	}
}

func TestLoadUndecodableReturnsNil(t *testing.T) {
	kv := memory.New()
	_ = kv.Set(context.Background(), PortfolioKey, "{corrupt")

	a := NewPortfolioAdapter(kv)
	if p := a.Load(context.Background()); p != nil {
		t.Errorf("Expected nil for corrupt payload, got %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	a := NewPortfolioAdapter(memory.New())
	ctx := context.Background()

	doc := domain.EmptyPortfolio()
	doc.Initiatives = []domain.Initiative{{ID: "INI-1", Name: "ERP Migration"}}

	if err := a.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := a.Load(ctx)
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if len(got.Initiatives) != 1 || got.Initiatives[0].ID != "INI-1" {
		t.Errorf("Round trip lost data: %+v", got.Initiatives)
	}
	if got.Actions == nil {
		t.Error("Expected loaded document to be normalized")
	}
}
