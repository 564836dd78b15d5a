// Package store owns the single in-memory portfolio document and is the only
// place mutations happen. All operations are serialized through one mutex, so
// callers always observe the document between mutations, never mid-mutation.
//
// Validation policy: an add with an empty discriminating field (name, title,
// description, reason) is a silent no-op and returns nil. Foreign references
// are advisory, never checked on create, and removing a referenced
// entity leaves the reference dangling. The one exception is initiative
// removal, which cascades to every child collection.
package store

import (
	"sync"
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/ids"
)

// Store holds the portfolio document and enforces its invariants.
type Store struct {
	mu  sync.RWMutex
	doc *domain.Portfolio
}

// New creates a store around doc. A nil doc starts an empty portfolio.
func New(doc *domain.Portfolio) *Store {
	if doc == nil {
		doc = domain.EmptyPortfolio()
	}
	doc.Normalize()
	return &Store{doc: doc}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() *domain.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Replace swaps in a whole new document, e.g. after an import.
func (s *Store) Replace(doc *domain.Portfolio) {
	doc.Normalize()
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// Initiatives

// AddInitiative appends a new initiative with a fresh id and creation
// timestamp. Returns nil without mutating when the name is empty.
func (s *Store) AddInitiative(req domain.CreateInitiativeRequest) *domain.Initiative {
	if req.Name == "" {
		return nil
	}
	ini := domain.Initiative{
		ID:          ids.New(ids.PrefixInitiative),
		Name:        req.Name,
		Goal:        req.Goal,
		Scope:       req.Scope,
		Priority:    req.Priority,
		TimeWindow:  req.TimeWindow,
		Milestones:  []string{},
		Assumptions: []string{},
		Risks:       []string{},
		Created:     time.Now().UTC(),
	}
	s.mu.Lock()
	s.doc.Initiatives = append(s.doc.Initiatives, ini)
	s.mu.Unlock()
	return &ini
}

// GetInitiative returns the initiative with the given id.
func (s *Store) GetInitiative(id string) (*domain.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ini := range s.doc.Initiatives {
		if ini.ID == id {
			c := ini
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListInitiatives returns all initiatives in collection order.
func (s *Store) ListInitiatives() []domain.Initiative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Initiative{}, s.doc.Initiatives...)
}

// UpdateInitiative applies the non-nil fields of req to the initiative.
func (s *Store) UpdateInitiative(id string, req domain.UpdateInitiativeRequest) (*domain.Initiative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Initiatives {
		if s.doc.Initiatives[i].ID != id {
			continue
		}
		ini := &s.doc.Initiatives[i]
		if req.Name != nil && *req.Name != "" {
			ini.Name = *req.Name
		}
		if req.Goal != nil {
			ini.Goal = *req.Goal
		}
		if req.Scope != nil {
			ini.Scope = *req.Scope
		}
		if req.Priority != nil {
			ini.Priority = *req.Priority
		}
		if req.TimeWindow != nil {
			ini.TimeWindow = *req.TimeWindow
		}
		c := *ini
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

// RemoveInitiative removes the initiative and cascades to every child
// collection: stakeholders, target groups, impacts, actions, artifacts and
// change proposals scoped to it all go with it. No-op when id is absent.
func (s *Store) RemoveInitiative(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Initiatives[:0]
	for _, ini := range s.doc.Initiatives {
		if ini.ID != id {
			kept = append(kept, ini)
		}
	}
	s.doc.Initiatives = kept

	stakeholders := s.doc.Stakeholders[:0]
	for _, sh := range s.doc.Stakeholders {
		if sh.InitiativeID != id {
			stakeholders = append(stakeholders, sh)
		}
	}
	s.doc.Stakeholders = stakeholders

	groups := s.doc.TargetGroups[:0]
	for _, tg := range s.doc.TargetGroups {
		if tg.InitiativeID != id {
			groups = append(groups, tg)
		}
	}
	s.doc.TargetGroups = groups

	impacts := s.doc.ImpactItems[:0]
	for _, it := range s.doc.ImpactItems {
		if it.InitiativeID != id {
			impacts = append(impacts, it)
		}
	}
	s.doc.ImpactItems = impacts

	actions := s.doc.Actions[:0]
	for _, a := range s.doc.Actions {
		if a.InitiativeID != id {
			actions = append(actions, a)
		}
	}
	s.doc.Actions = actions

	artifacts := s.doc.Artifacts[:0]
	for _, ar := range s.doc.Artifacts {
		if ar.InitiativeID != id {
			artifacts = append(artifacts, ar)
		}
	}
	s.doc.Artifacts = artifacts

	proposals := s.doc.ChangeProposals[:0]
	for _, p := range s.doc.ChangeProposals {
		if p.InitiativeID != id {
			proposals = append(proposals, p)
		}
	}
	s.doc.ChangeProposals = proposals
}

// Stakeholders

// AddStakeholder appends a stakeholder to an initiative. Returns nil without
// mutating when the name is empty. The initiative reference is not verified.
func (s *Store) AddStakeholder(initiativeID string, req domain.CreateStakeholderRequest) *domain.Stakeholder {
	if req.Name == "" {
		return nil
	}
	sh := domain.Stakeholder{
		ID:           ids.New(ids.PrefixStakeholder),
		InitiativeID: initiativeID,
		Name:         req.Name,
		Role:         req.Role,
		Function:     req.Function,
		OrgUnit:      req.OrgUnit,
		Influence:    req.Influence,
		Interest:     req.Interest,
		Readiness:    req.Readiness,
		Notes:        req.Notes,
	}
	s.mu.Lock()
	s.doc.Stakeholders = append(s.doc.Stakeholders, sh)
	s.mu.Unlock()
	return &sh
}

// ListStakeholders returns the stakeholders of one initiative.
func (s *Store) ListStakeholders(initiativeID string) []domain.Stakeholder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Stakeholder{}
	for _, sh := range s.doc.Stakeholders {
		if sh.InitiativeID == initiativeID {
			out = append(out, sh)
		}
	}
	return out
}

// RemoveStakeholder removes by id. Actions owned by the removed stakeholder
// keep their dangling owner reference.
func (s *Store) RemoveStakeholder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.Stakeholders[:0]
	for _, sh := range s.doc.Stakeholders {
		if sh.ID != id {
			kept = append(kept, sh)
		}
	}
	s.doc.Stakeholders = kept
}

// Target groups

// AddTargetGroup appends a target group. Returns nil when the name is empty.
// Negative sizes are clamped to zero.
func (s *Store) AddTargetGroup(initiativeID string, req domain.CreateTargetGroupRequest) *domain.TargetGroup {
	if req.Name == "" {
		return nil
	}
	size := req.Size
	if size < 0 {
		size = 0
	}
	tg := domain.TargetGroup{
		ID:           ids.New(ids.PrefixTargetGroup),
		InitiativeID: initiativeID,
		Name:         req.Name,
		Size:         size,
		OrgUnits:     notNil(req.OrgUnits),
		Locations:    notNil(req.Locations),
	}
	s.mu.Lock()
	s.doc.TargetGroups = append(s.doc.TargetGroups, tg)
	s.mu.Unlock()
	return &tg
}

// ListTargetGroups returns the target groups of one initiative.
func (s *Store) ListTargetGroups(initiativeID string) []domain.TargetGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.TargetGroup{}
	for _, tg := range s.doc.TargetGroups {
		if tg.InitiativeID == initiativeID {
			out = append(out, tg)
		}
	}
	return out
}

// RemoveTargetGroup removes by id. Impact items and actions referencing the
// group keep their dangling references.
func (s *Store) RemoveTargetGroup(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.TargetGroups[:0]
	for _, tg := range s.doc.TargetGroups {
		if tg.ID != id {
			kept = append(kept, tg)
		}
	}
	s.doc.TargetGroups = kept
}

// Impact items

// AddImpactItem appends an impact item. Returns nil when the change
// description is empty.
func (s *Store) AddImpactItem(initiativeID string, req domain.CreateImpactItemRequest) *domain.ImpactItem {
	if req.ChangeDescription == "" {
		return nil
	}
	it := domain.ImpactItem{
		ID:                ids.New(ids.PrefixImpact),
		InitiativeID:      initiativeID,
		TargetGroupID:     req.TargetGroupID,
		Dimension:         req.Dimension,
		ChangeDescription: req.ChangeDescription,
		ImpactLevel:       req.ImpactLevel,
		Criticality:       req.Criticality,
		TrainingNeed:      req.TrainingNeed,
		CommsNeed:         req.CommsNeed,
		Dependencies:      []string{},
	}
	s.mu.Lock()
	s.doc.ImpactItems = append(s.doc.ImpactItems, it)
	s.mu.Unlock()
	return &it
}

// ListImpactItems returns the impact items of one initiative.
func (s *Store) ListImpactItems(initiativeID string) []domain.ImpactItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ImpactItem{}
	for _, it := range s.doc.ImpactItems {
		if it.InitiativeID == initiativeID {
			out = append(out, it)
		}
	}
	return out
}

// RemoveImpactItem removes by id.
func (s *Store) RemoveImpactItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.ImpactItems[:0]
	for _, it := range s.doc.ImpactItems {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.doc.ImpactItems = kept
}

// Actions

// AddAction appends an action. Returns nil when the title is empty.
// Tag and target group sets are deduplicated; status defaults to planned.
func (s *Store) AddAction(initiativeID string, req domain.CreateActionRequest) *domain.Action {
	if req.Title == "" {
		return nil
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPlanned
	}
	a := domain.Action{
		ID:                ids.New(ids.PrefixAction),
		InitiativeID:      initiativeID,
		Type:              req.Type,
		Title:             req.Title,
		AdkarTags:         dedupe(req.AdkarTags),
		TargetGroupIDs:    dedupe(req.TargetGroupIDs),
		OwnerPersonID:     req.OwnerPersonID,
		DueDate:           req.DueDate,
		Status:            status,
		DependsOn:         notNil(req.DependsOn),
		LinkedArtifactIDs: []string{},
	}
	s.mu.Lock()
	s.doc.Actions = append(s.doc.Actions, a)
	s.mu.Unlock()
	return &a
}

// ListActions returns the actions of one initiative.
func (s *Store) ListActions(initiativeID string) []domain.Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Action{}
	for _, a := range s.doc.Actions {
		if a.InitiativeID == initiativeID {
			out = append(out, a)
		}
	}
	return out
}

// RemoveAction removes by id.
func (s *Store) RemoveAction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.Actions[:0]
	for _, a := range s.doc.Actions {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.doc.Actions = kept
}

// CycleActionStatus advances the action's status one step in the
// planned → in_progress → done → planned cycle. Returns nil when absent.
func (s *Store) CycleActionStatus(id string) *domain.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Actions {
		if s.doc.Actions[i].ID == id {
			s.doc.Actions[i].Status = domain.NextStatus(s.doc.Actions[i].Status)
			c := s.doc.Actions[i]
			return &c
		}
	}
	return nil
}

// Artifacts

// AddArtifact appends an artifact. Returns nil when the name is empty.
func (s *Store) AddArtifact(initiativeID string, req domain.CreateArtifactRequest) *domain.Artifact {
	if req.Name == "" {
		return nil
	}
	ar := domain.Artifact{
		ID:           ids.New(ids.PrefixArtifact),
		InitiativeID: initiativeID,
		Name:         req.Name,
		Kind:         req.Kind,
		URL:          req.URL,
	}
	s.mu.Lock()
	s.doc.Artifacts = append(s.doc.Artifacts, ar)
	s.mu.Unlock()
	return &ar
}

// ListArtifacts returns the artifacts of one initiative.
func (s *Store) ListArtifacts(initiativeID string) []domain.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Artifact{}
	for _, ar := range s.doc.Artifacts {
		if ar.InitiativeID == initiativeID {
			out = append(out, ar)
		}
	}
	return out
}

// RemoveArtifact removes by id. Actions keep dangling links.
func (s *Store) RemoveArtifact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.Artifacts[:0]
	for _, ar := range s.doc.Artifacts {
		if ar.ID != id {
			kept = append(kept, ar)
		}
	}
	s.doc.Artifacts = kept
}

// Change proposals

// AddProposal creates a pending change proposal. Returns nil when the reason
// is empty.
func (s *Store) AddProposal(initiativeID string, req domain.CreateProposalRequest) *domain.ChangeProposal {
	if req.Reason == "" {
		return nil
	}
	diff := req.Diff
	if diff.ActionsAdd == nil {
		diff.ActionsAdd = []domain.ProposalActionAdd{}
	}
	if diff.ActionsUpdate == nil {
		diff.ActionsUpdate = []domain.ProposalActionUpdate{}
	}
	if diff.ActionsRemove == nil {
		diff.ActionsRemove = []string{}
	}
	p := domain.ChangeProposal{
		ID:           ids.New(ids.PrefixProposal),
		InitiativeID: initiativeID,
		Reason:       req.Reason,
		Status:       domain.ProposalPending,
		Created:      time.Now().UTC(),
		Diff:         diff,
		Risks:        notNil(req.Risks),
		Benefits:     notNil(req.Benefits),
	}
	s.mu.Lock()
	s.doc.ChangeProposals = append(s.doc.ChangeProposals, p)
	s.mu.Unlock()
	return &p
}

// ListProposals returns the change proposals of one initiative.
func (s *Store) ListProposals(initiativeID string) []domain.ChangeProposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ChangeProposal{}
	for _, p := range s.doc.ChangeProposals {
		if p.InitiativeID == initiativeID {
			out = append(out, p)
		}
	}
	return out
}

// ApplyProposal moves a pending proposal to applied and stamps applied_at.
// The recorded diff is intentionally not executed against the actions.
// Returns ErrConflict when the proposal already reached a terminal state.
func (s *Store) ApplyProposal(id string) (*domain.ChangeProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.ChangeProposals {
		if s.doc.ChangeProposals[i].ID != id {
			continue
		}
		p := &s.doc.ChangeProposals[i]
		if p.Status != domain.ProposalPending {
			return nil, domain.ErrConflict
		}
		now := time.Now().UTC()
		p.Status = domain.ProposalApplied
		p.AppliedAt = &now
		c := *p
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

// RejectProposal moves a pending proposal to rejected.
// Returns ErrConflict when the proposal already reached a terminal state.
func (s *Store) RejectProposal(id string) (*domain.ChangeProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.ChangeProposals {
		if s.doc.ChangeProposals[i].ID != id {
			continue
		}
		p := &s.doc.ChangeProposals[i]
		if p.Status != domain.ProposalPending {
			return nil, domain.ErrConflict
		}
		p.Status = domain.ProposalRejected
		c := *p
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func notNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func dedupe(in []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
