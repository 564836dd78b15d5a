package domain

import "time"

// ChangeProposal is a proposed amendment to an initiative's action plan.
// It starts pending and ends applied or rejected; both end states are
// terminal. Applying a proposal records the decision and timestamp but does
// not execute the recorded diff against the action collection; the diff is
// documentation of intent, and executing it stays a manual step.
type ChangeProposal struct {
	ID           string       `json:"id"`
	InitiativeID string       `json:"initiative_id"`
	Reason       string       `json:"reason"`
	Status       string       `json:"status"` // pending, applied, rejected
	Created      time.Time    `json:"created"`
	AppliedAt    *time.Time   `json:"applied_at,omitempty"`
	Diff         ProposalDiff `json:"diff"`
	Risks        []string     `json:"risks"`
	Benefits     []string     `json:"benefits"`
}

// ProposalDiff records the intended plan amendments.
type ProposalDiff struct {
	ActionsAdd    []ProposalActionAdd    `json:"actions_add"`
	ActionsUpdate []ProposalActionUpdate `json:"actions_update"`
	ActionsRemove []string               `json:"actions_remove"`
}

// ProposalActionAdd sketches a new action to be added.
type ProposalActionAdd struct {
	Title string `json:"title"`
}

// ProposalActionUpdate sketches a change to an existing action.
type ProposalActionUpdate struct {
	ActionID string `json:"action_id"`
	Fields   string `json:"fields"`
}

// CreateProposalRequest is the request body for creating a change proposal.
type CreateProposalRequest struct {
	Reason   string       `json:"reason"`
	Diff     ProposalDiff `json:"diff"`
	Risks    []string     `json:"risks"`
	Benefits []string     `json:"benefits"`
}
