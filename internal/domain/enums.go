package domain

// The five ADKAR stages, in model order. Coverage maps always carry all five.
var AdkarStages = []string{"Awareness", "Desire", "Knowledge", "Ability", "Reinforcement"}

// Impact dimensions for the heatmap grid.
var Dimensions = []string{"People", "Process", "Technology", "Org"}

// Severity levels, highest first. Also used for influence, interest,
// criticality, training need and comms need.
var Levels = []string{"H", "M", "L"}

// Initiative priorities.
var Priorities = []string{"High", "Medium", "Low"}

// Stakeholder readiness toward the change.
var ReadinessValues = []string{"supportive", "neutral", "skeptical", "resistant"}

// Stakeholder roles: sponsor, project lead, HR, IT, business representative,
// change manager, subject-matter expert.
var Roles = []string{"Sponsor", "PL", "HR", "IT", "BR", "CM", "SME"}

// Action intervention types.
var ActionTypes = []string{"Comms", "Training", "Workshop", "Coaching", "Enablement"}

// Action statuses, in cycle order.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

var ActionStatuses = []string{StatusPlanned, StatusInProgress, StatusDone}

// Change proposal statuses. Applied and rejected are terminal.
const (
	ProposalPending  = "pending"
	ProposalApplied  = "applied"
	ProposalRejected = "rejected"
)
