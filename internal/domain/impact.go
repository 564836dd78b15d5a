package domain

// ImpactItem describes one change effect on a target group along a single
// dimension. The target group reference is advisory: it is never validated on
// create, and consumers render a placeholder when the group is gone.
type ImpactItem struct {
	ID                string   `json:"id"`
	InitiativeID      string   `json:"initiative_id"`
	TargetGroupID     string   `json:"target_group_id"`
	Dimension         string   `json:"dimension"` // People, Process, Technology, Org
	ChangeDescription string   `json:"change_description"`
	ImpactLevel       string   `json:"impact_level"`  // H, M, L
	Criticality       string   `json:"criticality"`   // H, M, L
	TrainingNeed      string   `json:"training_need"` // H, M, L
	CommsNeed         string   `json:"comms_need"`    // H, M, L
	Dependencies      []string `json:"dependencies"`
}

// CreateImpactItemRequest is the request body for adding an impact item.
type CreateImpactItemRequest struct {
	TargetGroupID     string `json:"target_group_id"`
	Dimension         string `json:"dimension"`
	ChangeDescription string `json:"change_description"`
	ImpactLevel       string `json:"impact_level"`
	Criticality       string `json:"criticality"`
	TrainingNeed      string `json:"training_need"`
	CommsNeed         string `json:"comms_need"`
}
