package domain

import "time"

// Initiative is a bounded change effort. It scopes every other entity:
// stakeholders, target groups, impacts, actions, artifacts and proposals
// all reference exactly one initiative.
type Initiative struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Goal        string    `json:"goal"`
	Scope       string    `json:"scope"`
	Priority    string    `json:"priority"` // High, Medium, Low
	TimeWindow  string    `json:"time_window"`
	Milestones  []string  `json:"milestones"`
	Assumptions []string  `json:"assumptions"`
	Risks       []string  `json:"risks"`
	Created     time.Time `json:"created"`
}

// CreateInitiativeRequest is the request body for creating an initiative.
type CreateInitiativeRequest struct {
	Name       string `json:"name"`
	Goal       string `json:"goal"`
	Scope      string `json:"scope"`
	Priority   string `json:"priority"`
	TimeWindow string `json:"time_window"`
}

// UpdateInitiativeRequest is the request body for updating an initiative.
type UpdateInitiativeRequest struct {
	Name       *string `json:"name,omitempty"`
	Goal       *string `json:"goal,omitempty"`
	Scope      *string `json:"scope,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	TimeWindow *string `json:"time_window,omitempty"`
}
