package domain

import (
	"reflect"
	"testing"
)

func TestToggleAdkarTag(t *testing.T) {
	a := Action{AdkarTags: []string{"Awareness", "Desire"}}

	a.ToggleAdkarTag("Knowledge")
	if !reflect.DeepEqual(a.AdkarTags, []string{"Awareness", "Desire", "Knowledge"}) {
		t.Errorf("Expected tag added, got %v", a.AdkarTags)
	}

	a.ToggleAdkarTag("Desire")
	if !reflect.DeepEqual(a.AdkarTags, []string{"Awareness", "Knowledge"}) {
		t.Errorf("Expected tag removed, got %v", a.AdkarTags)
	}

	// Toggling twice restores membership
	a.ToggleAdkarTag("Desire")
	a.ToggleAdkarTag("Desire")
	if !reflect.DeepEqual(a.AdkarTags, []string{"Awareness", "Knowledge"}) {
		t.Errorf("Expected double toggle to be a no-op, got %v", a.AdkarTags)
	}
}

func TestToggleTargetGroup(t *testing.T) {
	a := Action{TargetGroupIDs: []string{}}

	a.ToggleTargetGroup("TG-1")
	if !reflect.DeepEqual(a.TargetGroupIDs, []string{"TG-1"}) {
		t.Errorf("Expected group added, got %v", a.TargetGroupIDs)
	}
	a.ToggleTargetGroup("TG-1")
	if len(a.TargetGroupIDs) != 0 {
		t.Errorf("Expected group removed, got %v", a.TargetGroupIDs)
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{StatusPlanned, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusPlanned},
		{"", StatusPlanned},
		{"garbage", StatusPlanned},
	}
	for _, tt := range tests {
		if got := NextStatus(tt.in); got != tt.want {
			t.Errorf("NextStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPortfolioCloneIsDeep(t *testing.T) {
	p := EmptyPortfolio()
	p.Actions = append(p.Actions, Action{ID: "A-1", AdkarTags: []string{"Awareness"}})
	p.TargetGroups = append(p.TargetGroups, TargetGroup{ID: "TG-1", OrgUnits: []string{"Sales"}})

	c := p.Clone()
	c.Actions[0].AdkarTags[0] = "Desire"
	c.TargetGroups[0].OrgUnits[0] = "IT"

	if p.Actions[0].AdkarTags[0] != "Awareness" {
		t.Error("Clone shares action tag slice with original")
	}
	if p.TargetGroups[0].OrgUnits[0] != "Sales" {
		t.Error("Clone shares target group slice with original")
	}
}

func TestNormalizeFillsNilSlices(t *testing.T) {
	p := &Portfolio{
		Initiatives: []Initiative{{ID: "INI-1"}},
		Actions:     []Action{{ID: "A-1"}},
	}
	p.Normalize()

	if p.Stakeholders == nil || p.ChangeProposals == nil {
		t.Error("Expected nil collections to be replaced with empty ones")
	}
	if p.Initiatives[0].Milestones == nil {
		t.Error("Expected nil milestones to be replaced")
	}
	if p.Actions[0].AdkarTags == nil || p.Actions[0].LinkedArtifactIDs == nil {
		t.Error("Expected nil action slices to be replaced")
	}
}
