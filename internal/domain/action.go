package domain

// Action is a planned or executed intervention (comms, training, workshop,
// coaching, enablement) addressing one or more ADKAR stages for one or more
// target groups. AdkarTags and TargetGroupIDs have set semantics.
type Action struct {
	ID                string   `json:"id"`
	InitiativeID      string   `json:"initiative_id"`
	Type              string   `json:"type"`
	Title             string   `json:"title"`
	AdkarTags         []string `json:"adkar_tags"`
	TargetGroupIDs    []string `json:"target_group_ids"`
	OwnerPersonID     string   `json:"owner_person_id"` // stakeholder id, may be empty
	DueDate           string   `json:"due_date"`        // ISO date (YYYY-MM-DD), may be empty
	Status            string   `json:"status"`          // planned, in_progress, done
	DependsOn         []string `json:"depends_on"`
	LinkedArtifactIDs []string `json:"linked_artifact_ids"`
}

// CreateActionRequest is the request body for adding an action.
type CreateActionRequest struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	AdkarTags      []string `json:"adkar_tags"`
	TargetGroupIDs []string `json:"target_group_ids"`
	OwnerPersonID  string   `json:"owner_person_id"`
	DueDate        string   `json:"due_date"`
	Status         string   `json:"status"`
	DependsOn      []string `json:"depends_on"`
}

// ToggleAdkarTag flips membership of tag in the draft's ADKAR tag set.
// Toggling twice restores the original membership.
func (a *Action) ToggleAdkarTag(tag string) {
	a.AdkarTags = toggle(a.AdkarTags, tag)
}

// ToggleTargetGroup flips membership of id in the draft's target group set.
func (a *Action) ToggleTargetGroup(id string) {
	a.TargetGroupIDs = toggle(a.TargetGroupIDs, id)
}

func toggle(set []string, v string) []string {
	for i, s := range set {
		if s == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

// NextStatus returns the status following s in the planned → in_progress →
// done cycle. After done it wraps back to planned.
func NextStatus(s string) string {
	switch s {
	case StatusPlanned:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusPlanned
	}
}
