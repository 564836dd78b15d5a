// Package seed provides the demo portfolio: a worked ERP migration example
// used to explore the tool and to exercise every view with realistic data.
package seed

import (
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

// Demo returns the demo portfolio. IDs are fixed so reloading the demo is
// idempotent and examples in the docs stay valid.
func Demo() *domain.Portfolio {
	p := &domain.Portfolio{
		Initiatives: []domain.Initiative{
			{
				ID:         "INI-demo1",
				Name:       "ERP Migration Wave 1",
				Goal:       "Migrate finance and controlling from SAP ECC to S/4HANA",
				Scope:      "DACH region, 450 employees",
				Priority:   "High",
				TimeWindow: "Q1–Q3 2026",
				Created:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
			},
		},
		Stakeholders: []domain.Stakeholder{
			{ID: "S-001", InitiativeID: "INI-demo1", Name: "Dr. Petra Schmidt", Role: "Sponsor", Function: "CFO", OrgUnit: "Finance", Influence: "H", Interest: "H", Readiness: "supportive", Notes: "Drives the initiative"},
			{ID: "S-002", InitiativeID: "INI-demo1", Name: "Markus Weber", Role: "PL", Function: "Project lead", OrgUnit: "IT", Influence: "H", Interest: "H", Readiness: "supportive"},
			{ID: "S-003", InitiativeID: "INI-demo1", Name: "Sabine Müller", Role: "BR", Function: "Head of department", OrgUnit: "Controlling", Influence: "M", Interest: "H", Readiness: "skeptical", Notes: "Worried about job security"},
			{ID: "S-004", InitiativeID: "INI-demo1", Name: "Thomas Bauer", Role: "HR", Function: "HR business partner", OrgUnit: "HR", Influence: "M", Interest: "M", Readiness: "neutral"},
			{ID: "S-005", InitiativeID: "INI-demo1", Name: "Julia Fischer", Role: "CM", Function: "Change manager", OrgUnit: "PMO", Influence: "M", Interest: "H", Readiness: "supportive"},
		},
		TargetGroups: []domain.TargetGroup{
			{ID: "TG-001", InitiativeID: "INI-demo1", Name: "Finance Accounting", Size: 120, OrgUnits: []string{"Accounting", "Financial Reporting"}, Locations: []string{"Cologne", "Berlin"}},
			{ID: "TG-002", InitiativeID: "INI-demo1", Name: "Controlling", Size: 85, OrgUnits: []string{"Controlling"}, Locations: []string{"Cologne", "Munich"}},
			{ID: "TG-003", InitiativeID: "INI-demo1", Name: "IT Operations", Size: 40, OrgUnits: []string{"IT"}, Locations: []string{"Cologne"}},
			{ID: "TG-004", InitiativeID: "INI-demo1", Name: "Management DACH", Size: 25, OrgUnits: []string{"Finance", "Controlling"}, Locations: []string{"Cologne", "Berlin", "Munich"}},
		},
		ImpactItems: []domain.ImpactItem{
			{ID: "I-001", InitiativeID: "INI-demo1", TargetGroupID: "TG-001", Dimension: "Technology", ChangeDescription: "New S/4HANA Fiori interface replaces SAP GUI", ImpactLevel: "H", Criticality: "H", TrainingNeed: "H", CommsNeed: "H"},
			{ID: "I-002", InitiativeID: "INI-demo1", TargetGroupID: "TG-001", Dimension: "Process", ChangeDescription: "Month-end close is automated and shortened", ImpactLevel: "H", Criticality: "H", TrainingNeed: "M", CommsNeed: "M"},
			{ID: "I-003", InitiativeID: "INI-demo1", TargetGroupID: "TG-002", Dimension: "Technology", ChangeDescription: "Embedded analytics replaces BW reports", ImpactLevel: "H", Criticality: "M", TrainingNeed: "H", CommsNeed: "M"},
			{ID: "I-004", InitiativeID: "INI-demo1", TargetGroupID: "TG-002", Dimension: "People", ChangeDescription: "Controlling role shifts from manual reports to analysis", ImpactLevel: "M", Criticality: "M", TrainingNeed: "M", CommsNeed: "H"},
			{ID: "I-005", InitiativeID: "INI-demo1", TargetGroupID: "TG-003", Dimension: "Technology", ChangeDescription: "New architecture (cloud, HANA DB) requires new skills", ImpactLevel: "H", Criticality: "H", TrainingNeed: "H", CommsNeed: "M"},
			{ID: "I-006", InitiativeID: "INI-demo1", TargetGroupID: "TG-003", Dimension: "Process", ChangeDescription: "Establish DevOps processes for S/4 operations", ImpactLevel: "M", Criticality: "M", TrainingNeed: "H", CommsNeed: "L"},
			{ID: "I-007", InitiativeID: "INI-demo1", TargetGroupID: "TG-004", Dimension: "People", ChangeDescription: "Leadership must actively champion and communicate the change", ImpactLevel: "M", Criticality: "H", TrainingNeed: "M", CommsNeed: "H"},
			{ID: "I-008", InitiativeID: "INI-demo1", TargetGroupID: "TG-001", Dimension: "Org", ChangeDescription: "Shared service center is being set up", ImpactLevel: "M", Criticality: "M", TrainingNeed: "L", CommsNeed: "H"},
		},
		Actions: []domain.Action{
			{ID: "A-001", InitiativeID: "INI-demo1", Type: "Comms", Title: "Kick-off townhall: vision and why", AdkarTags: []string{"Awareness"}, TargetGroupIDs: []string{"TG-001", "TG-002", "TG-003", "TG-004"}, OwnerPersonID: "S-001", DueDate: "2026-02-15", Status: "done"},
			{ID: "A-002", InitiativeID: "INI-demo1", Type: "Comms", Title: "Manager briefing: impact and role", AdkarTags: []string{"Awareness", "Desire"}, TargetGroupIDs: []string{"TG-004"}, OwnerPersonID: "S-005", DueDate: "2026-02-28", Status: "done", DependsOn: []string{"A-001"}},
			{ID: "A-003", InitiativeID: "INI-demo1", Type: "Workshop", Title: "Impact assessment workshop Finance", AdkarTags: []string{"Awareness", "Knowledge"}, TargetGroupIDs: []string{"TG-001"}, OwnerPersonID: "S-005", DueDate: "2026-03-15", Status: "in_progress", DependsOn: []string{"A-002"}},
			{ID: "A-004", InitiativeID: "INI-demo1", Type: "Training", Title: "SAP Fiori key-user training (wave 1)", AdkarTags: []string{"Knowledge", "Ability"}, TargetGroupIDs: []string{"TG-001"}, OwnerPersonID: "S-002", DueDate: "2026-04-15", Status: "planned", DependsOn: []string{"A-003"}},
			{ID: "A-005", InitiativeID: "INI-demo1", Type: "Training", Title: "Embedded analytics training Controlling", AdkarTags: []string{"Knowledge", "Ability"}, TargetGroupIDs: []string{"TG-002"}, OwnerPersonID: "S-002", DueDate: "2026-04-30", Status: "planned", DependsOn: []string{"A-003"}},
			{ID: "A-006", InitiativeID: "INI-demo1", Type: "Coaching", Title: "Leadership coaching: change communication", AdkarTags: []string{"Desire", "Ability"}, TargetGroupIDs: []string{"TG-004"}, OwnerPersonID: "S-005", DueDate: "2026-03-30", Status: "planned", DependsOn: []string{"A-002"}},
			{ID: "A-007", InitiativeID: "INI-demo1", Type: "Enablement", Title: "IT operations: S/4HANA admin training", AdkarTags: []string{"Knowledge", "Ability"}, TargetGroupIDs: []string{"TG-003"}, OwnerPersonID: "S-002", DueDate: "2026-05-15", Status: "planned"},
			{ID: "A-008", InitiativeID: "INI-demo1", Type: "Comms", Title: "Go-live newsletter and FAQ", AdkarTags: []string{"Awareness", "Reinforcement"}, TargetGroupIDs: []string{"TG-001", "TG-002", "TG-003"}, OwnerPersonID: "S-005", DueDate: "2026-05-10", Status: "planned", DependsOn: []string{"A-004", "A-005"}},
			{ID: "A-009", InitiativeID: "INI-demo1", Type: "Workshop", Title: "Post-go-live retrospective", AdkarTags: []string{"Reinforcement"}, TargetGroupIDs: []string{"TG-001", "TG-002", "TG-003", "TG-004"}, OwnerPersonID: "S-005", DueDate: "2026-06-15", Status: "planned", DependsOn: []string{"A-008"}},
		},
	}
	p.Normalize()
	return p
}
