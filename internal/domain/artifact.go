package domain

// Artifact is a supporting deliverable (slide deck, FAQ, training material)
// that actions can link to via LinkedArtifactIDs.
type Artifact struct {
	ID           string `json:"id"`
	InitiativeID string `json:"initiative_id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	URL          string `json:"url"`
}

// CreateArtifactRequest is the request body for adding an artifact.
type CreateArtifactRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}
