package domain

// TargetGroup is a cohort of people affected by an initiative.
type TargetGroup struct {
	ID           string   `json:"id"`
	InitiativeID string   `json:"initiative_id"`
	Name         string   `json:"name"`
	Size         int      `json:"size"` // head count, never negative
	OrgUnits     []string `json:"org_units"`
	Locations    []string `json:"locations"`
}

// CreateTargetGroupRequest is the request body for adding a target group.
type CreateTargetGroupRequest struct {
	Name      string   `json:"name"`
	Size      int      `json:"size"`
	OrgUnits  []string `json:"org_units"`
	Locations []string `json:"locations"`
}
