package domain

// Stakeholder is a person with a stake in an initiative, rated by influence,
// interest and readiness. Resistant and skeptical stakeholders surface in the
// status report.
type Stakeholder struct {
	ID           string `json:"id"`
	InitiativeID string `json:"initiative_id"`
	Name         string `json:"name"`
	Role         string `json:"role"` // one of Roles
	Function     string `json:"function"`
	OrgUnit      string `json:"org_unit"`
	Influence    string `json:"influence"` // H, M, L
	Interest     string `json:"interest"`  // H, M, L
	Readiness    string `json:"readiness"` // supportive, neutral, skeptical, resistant
	Notes        string `json:"notes"`
}

// CreateStakeholderRequest is the request body for adding a stakeholder.
type CreateStakeholderRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Function  string `json:"function"`
	OrgUnit   string `json:"org_unit"`
	Influence string `json:"influence"`
	Interest  string `json:"interest"`
	Readiness string `json:"readiness"`
	Notes     string `json:"notes"`
}
