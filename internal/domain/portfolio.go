package domain

// Portfolio is the root aggregate: one document holding every collection.
// All entities live in exactly one portfolio, and the whole document is
// persisted wholesale after mutations.
type Portfolio struct {
	Initiatives     []Initiative     `json:"initiatives"`
	Stakeholders    []Stakeholder    `json:"stakeholders"`
	TargetGroups    []TargetGroup    `json:"targetGroups"`
	ImpactItems     []ImpactItem     `json:"impactItems"`
	Actions         []Action         `json:"actions"`
	Artifacts       []Artifact       `json:"artifacts"`
	ChangeProposals []ChangeProposal `json:"changeProposals"`
}

// EmptyPortfolio returns a portfolio with all collections present but empty.
func EmptyPortfolio() *Portfolio {
	return &Portfolio{
		Initiatives:     []Initiative{},
		Stakeholders:    []Stakeholder{},
		TargetGroups:    []TargetGroup{},
		ImpactItems:     []ImpactItem{},
		Actions:         []Action{},
		Artifacts:       []Artifact{},
		ChangeProposals: []ChangeProposal{},
	}
}

// Clone returns a deep copy of the portfolio. Readers get clones so they can
// never observe or disturb in-place mutations.
func (p *Portfolio) Clone() *Portfolio {
	c := &Portfolio{
		Initiatives:     make([]Initiative, len(p.Initiatives)),
		Stakeholders:    append([]Stakeholder{}, p.Stakeholders...),
		TargetGroups:    make([]TargetGroup, len(p.TargetGroups)),
		ImpactItems:     make([]ImpactItem, len(p.ImpactItems)),
		Actions:         make([]Action, len(p.Actions)),
		Artifacts:       append([]Artifact{}, p.Artifacts...),
		ChangeProposals: make([]ChangeProposal, len(p.ChangeProposals)),
	}
	for i, ini := range p.Initiatives {
		ini.Milestones = cloneStrings(ini.Milestones)
		ini.Assumptions = cloneStrings(ini.Assumptions)
		ini.Risks = cloneStrings(ini.Risks)
		c.Initiatives[i] = ini
	}
	for i, tg := range p.TargetGroups {
		tg.OrgUnits = cloneStrings(tg.OrgUnits)
		tg.Locations = cloneStrings(tg.Locations)
		c.TargetGroups[i] = tg
	}
	for i, it := range p.ImpactItems {
		it.Dependencies = cloneStrings(it.Dependencies)
		c.ImpactItems[i] = it
	}
	for i, a := range p.Actions {
		a.AdkarTags = cloneStrings(a.AdkarTags)
		a.TargetGroupIDs = cloneStrings(a.TargetGroupIDs)
		a.DependsOn = cloneStrings(a.DependsOn)
		a.LinkedArtifactIDs = cloneStrings(a.LinkedArtifactIDs)
		c.Actions[i] = a
	}
	for i, cp := range p.ChangeProposals {
		cp.Risks = cloneStrings(cp.Risks)
		cp.Benefits = cloneStrings(cp.Benefits)
		cp.Diff.ActionsAdd = append([]ProposalActionAdd{}, cp.Diff.ActionsAdd...)
		cp.Diff.ActionsUpdate = append([]ProposalActionUpdate{}, cp.Diff.ActionsUpdate...)
		cp.Diff.ActionsRemove = cloneStrings(cp.Diff.ActionsRemove)
		if cp.AppliedAt != nil {
			t := *cp.AppliedAt
			cp.AppliedAt = &t
		}
		c.ChangeProposals[i] = cp
	}
	return c
}

// Normalize replaces nil collections and nil per-entity slices with empty
// ones, so optional sequences are never absent after deserialization.
func (p *Portfolio) Normalize() {
	if p.Initiatives == nil {
		p.Initiatives = []Initiative{}
	}
	if p.Stakeholders == nil {
		p.Stakeholders = []Stakeholder{}
	}
	if p.TargetGroups == nil {
		p.TargetGroups = []TargetGroup{}
	}
	if p.ImpactItems == nil {
		p.ImpactItems = []ImpactItem{}
	}
	if p.Actions == nil {
		p.Actions = []Action{}
	}
	if p.Artifacts == nil {
		p.Artifacts = []Artifact{}
	}
	if p.ChangeProposals == nil {
		p.ChangeProposals = []ChangeProposal{}
	}
	for i := range p.Initiatives {
		ini := &p.Initiatives[i]
		ini.Milestones = notNil(ini.Milestones)
		ini.Assumptions = notNil(ini.Assumptions)
		ini.Risks = notNil(ini.Risks)
	}
	for i := range p.TargetGroups {
		tg := &p.TargetGroups[i]
		tg.OrgUnits = notNil(tg.OrgUnits)
		tg.Locations = notNil(tg.Locations)
	}
	for i := range p.ImpactItems {
		p.ImpactItems[i].Dependencies = notNil(p.ImpactItems[i].Dependencies)
	}
	for i := range p.Actions {
		a := &p.Actions[i]
		a.AdkarTags = notNil(a.AdkarTags)
		a.TargetGroupIDs = notNil(a.TargetGroupIDs)
		a.DependsOn = notNil(a.DependsOn)
		a.LinkedArtifactIDs = notNil(a.LinkedArtifactIDs)
	}
	for i := range p.ChangeProposals {
		cp := &p.ChangeProposals[i]
		cp.Risks = notNil(cp.Risks)
		cp.Benefits = notNil(cp.Benefits)
		if cp.Diff.ActionsAdd == nil {
			cp.Diff.ActionsAdd = []ProposalActionAdd{}
		}
		if cp.Diff.ActionsUpdate == nil {
			cp.Diff.ActionsUpdate = []ProposalActionUpdate{}
		}
		cp.Diff.ActionsRemove = notNil(cp.Diff.ActionsRemove)
	}
}

func cloneStrings(s []string) []string {
	return append([]string{}, s...)
}

func notNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
