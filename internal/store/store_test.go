package store

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

func seedInitiative(t *testing.T, s *Store) *domain.Initiative {
	t.Helper()
	ini := s.AddInitiative(domain.CreateInitiativeRequest{Name: "ERP Migration", Priority: "High"})
	if ini == nil {
		t.Fatal("AddInitiative returned nil")
	}
	return ini
}

func TestAddInitiative(t *testing.T) {
	s := New(nil)

	ini := seedInitiative(t, s)
	if !strings.HasPrefix(ini.ID, "INI-") {
		t.Errorf("Expected INI- prefix, got %q", ini.ID)
	}
	if ini.Created.IsZero() {
		t.Error("Expected creation timestamp to be set")
	}
	if ini.Milestones == nil || ini.Risks == nil {
		t.Error("Expected empty slices, not nil")
	}

	if got := len(s.ListInitiatives()); got != 1 {
		t.Errorf("Expected 1 initiative, got %d", got)
	}
}

func TestAddInitiativeEmptyNameIsNoOp(t *testing.T) {
	s := New(nil)

	if ini := s.AddInitiative(domain.CreateInitiativeRequest{}); ini != nil {
		t.Errorf("Expected nil for empty name, got %+v", ini)
	}
	if got := len(s.ListInitiatives()); got != 0 {
		t.Errorf("Expected document untouched, got %d initiatives", got)
	}
}

func TestGetInitiativeNotFound(t *testing.T) {
	s := New(nil)
	if _, err := s.GetInitiative("INI-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateInitiativePartial(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)

	goal := "Go-live without disruption"
	updated, err := s.UpdateInitiative(ini.ID, domain.UpdateInitiativeRequest{Goal: &goal})
	if err != nil {
		t.Fatalf("UpdateInitiative failed: %v", err)
	}
	if updated.Goal != goal {
		t.Errorf("Expected goal updated, got %q", updated.Goal)
	}
	if updated.Name != "ERP Migration" || updated.Priority != "High" {
		t.Error("Expected untouched fields to survive a partial update")
	}

	empty := ""
	updated, err = s.UpdateInitiative(ini.ID, domain.UpdateInitiativeRequest{Name: &empty})
	if err != nil {
		t.Fatalf("UpdateInitiative failed: %v", err)
	}
	if updated.Name != "ERP Migration" {
		t.Error("Expected empty name to be ignored")
	}
}

func TestRemoveInitiativeCascades(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)
	other := s.AddInitiative(domain.CreateInitiativeRequest{Name: "CRM Rollout"})

	s.AddStakeholder(ini.ID, domain.CreateStakeholderRequest{Name: "Anna"})
	s.AddTargetGroup(ini.ID, domain.CreateTargetGroupRequest{Name: "Sales"})
	s.AddImpactItem(ini.ID, domain.CreateImpactItemRequest{ChangeDescription: "New order entry"})
	s.AddAction(ini.ID, domain.CreateActionRequest{Title: "Kickoff"})
	s.AddArtifact(ini.ID, domain.CreateArtifactRequest{Name: "Comms plan"})
	s.AddProposal(ini.ID, domain.CreateProposalRequest{Reason: "Slipped timeline"})

	keepAction := s.AddAction(other.ID, domain.CreateActionRequest{Title: "Survives"})

	s.RemoveInitiative(ini.ID)

	doc := s.Snapshot()
	if len(doc.Initiatives) != 1 {
		t.Fatalf("Expected 1 initiative left, got %d", len(doc.Initiatives))
	}
	if len(doc.Stakeholders) != 0 || len(doc.TargetGroups) != 0 || len(doc.ImpactItems) != 0 ||
		len(doc.Artifacts) != 0 || len(doc.ChangeProposals) != 0 {
		t.Error("Expected all child collections of the removed initiative to be empty")
	}
	if len(doc.Actions) != 1 || doc.Actions[0].ID != keepAction.ID {
		t.Errorf("Expected the other initiative's action to survive, got %+v", doc.Actions)
	}
}

func TestRemoveInitiativeUnknownIsNoOp(t *testing.T) {
	s := New(nil)
	seedInitiative(t, s)
	s.RemoveInitiative("INI-missing")
	if got := len(s.ListInitiatives()); got != 1 {
		t.Errorf("Expected no-op, got %d initiatives", got)
	}
}

func TestAddStakeholderDoesNotCheckInitiative(t *testing.T) {
	s := New(nil)

	// References are advisory: the store accepts children of unknown parents.
	sh := s.AddStakeholder("INI-missing", domain.CreateStakeholderRequest{Name: "Ghost"})
	if sh == nil {
		t.Fatal("Expected stakeholder to be created")
	}
	if got := len(s.ListStakeholders("INI-missing")); got != 1 {
		t.Errorf("Expected 1 stakeholder, got %d", got)
	}
}

func TestAddTargetGroupClampsSize(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)

	tg := s.AddTargetGroup(ini.ID, domain.CreateTargetGroupRequest{Name: "Ops", Size: -5})
	if tg.Size != 0 {
		t.Errorf("Expected negative size clamped to 0, got %d", tg.Size)
	}
}

func TestRemoveTargetGroupLeavesDanglingRefs(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)
	tg := s.AddTargetGroup(ini.ID, domain.CreateTargetGroupRequest{Name: "Sales"})
	s.AddImpactItem(ini.ID, domain.CreateImpactItemRequest{ChangeDescription: "x", TargetGroupID: tg.ID})

	s.RemoveTargetGroup(tg.ID)

	impacts := s.ListImpactItems(ini.ID)
	if len(impacts) != 1 {
		t.Fatalf("Expected impact to survive, got %d", len(impacts))
	}
	if impacts[0].TargetGroupID != tg.ID {
		t.Error("Expected the dangling reference to be preserved")
	}
}

func TestAddActionDefaultsAndDedupe(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)

	a := s.AddAction(ini.ID, domain.CreateActionRequest{
		Title:          "Training wave 1",
		AdkarTags:      []string{"Knowledge", "Knowledge", "Ability"},
		TargetGroupIDs: []string{"TG-1", "TG-1"},
	})
	if a.Status != domain.StatusPlanned {
		t.Errorf("Expected default status planned, got %q", a.Status)
	}
	if !reflect.DeepEqual(a.AdkarTags, []string{"Knowledge", "Ability"}) {
		t.Errorf("Expected deduplicated tags, got %v", a.AdkarTags)
	}
	if !reflect.DeepEqual(a.TargetGroupIDs, []string{"TG-1"}) {
		t.Errorf("Expected deduplicated groups, got %v", a.TargetGroupIDs)
	}
}

func TestCycleActionStatus(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)
	a := s.AddAction(ini.ID, domain.CreateActionRequest{Title: "Kickoff"})

	want := []string{domain.StatusInProgress, domain.StatusDone, domain.StatusPlanned}
	for _, status := range want {
		got := s.CycleActionStatus(a.ID)
		if got == nil || got.Status != status {
			t.Fatalf("Expected status %q, got %+v", status, got)
		}
	}

	if got := s.CycleActionStatus("A-missing"); got != nil {
		t.Errorf("Expected nil for unknown action, got %+v", got)
	}
}

func TestProposalLifecycle(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)

	p := s.AddProposal(ini.ID, domain.CreateProposalRequest{Reason: "Scope change"})
	if p.Status != domain.ProposalPending {
		t.Fatalf("Expected pending, got %q", p.Status)
	}
	if p.Diff.ActionsAdd == nil || p.Diff.ActionsRemove == nil {
		t.Error("Expected empty diff slices, not nil")
	}

	applied, err := s.ApplyProposal(p.ID)
	if err != nil {
		t.Fatalf("ApplyProposal failed: %v", err)
	}
	if applied.Status != domain.ProposalApplied {
		t.Errorf("Expected applied, got %q", applied.Status)
	}
	if applied.AppliedAt == nil {
		t.Error("Expected applied_at to be stamped")
	}

	// Applied is terminal
	if _, err := s.ApplyProposal(p.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Expected ErrConflict on re-apply, got %v", err)
	}
	if _, err := s.RejectProposal(p.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Expected ErrConflict on reject after apply, got %v", err)
	}
}

func TestRejectProposal(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)
	p := s.AddProposal(ini.ID, domain.CreateProposalRequest{Reason: "Budget cut"})

	rejected, err := s.RejectProposal(p.ID)
	if err != nil {
		t.Fatalf("RejectProposal failed: %v", err)
	}
	if rejected.Status != domain.ProposalRejected {
		t.Errorf("Expected rejected, got %q", rejected.Status)
	}
	if rejected.AppliedAt != nil {
		t.Error("Expected no applied_at on rejection")
	}

	if _, err := s.ApplyProposal(p.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Expected ErrConflict on apply after reject, got %v", err)
	}
	if _, err := s.ApplyProposal("P-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown proposal, got %v", err)
	}
}

func TestApplyProposalDoesNotExecuteDiff(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)
	a := s.AddAction(ini.ID, domain.CreateActionRequest{Title: "Keep me"})

	p := s.AddProposal(ini.ID, domain.CreateProposalRequest{
		Reason: "Trim plan",
		Diff:   domain.ProposalDiff{ActionsRemove: []string{a.ID}},
	})
	if _, err := s.ApplyProposal(p.ID); err != nil {
		t.Fatalf("ApplyProposal failed: %v", err)
	}

	// The diff is a record of intent, not an executable patch.
	if got := len(s.ListActions(ini.ID)); got != 1 {
		t.Errorf("Expected action untouched by apply, got %d actions", got)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New(nil)
	ini := seedInitiative(t, s)

	snap := s.Snapshot()
	snap.Initiatives[0].Name = "mutated"

	got, err := s.GetInitiative(ini.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "ERP Migration" {
		t.Error("Snapshot mutation leaked into the store")
	}
}

func TestReplace(t *testing.T) {
	s := New(nil)
	seedInitiative(t, s)

	s.Replace(&domain.Portfolio{Initiatives: []domain.Initiative{{ID: "INI-x", Name: "Imported"}}})

	list := s.ListInitiatives()
	if len(list) != 1 || list[0].ID != "INI-x" {
		t.Errorf("Expected replaced document, got %+v", list)
	}
	if s.Snapshot().Actions == nil {
		t.Error("Expected Replace to normalize nil collections")
	}
}
