// Package ids generates prefixed entity identifiers.
//
// The prefix encodes the entity type (INI- for initiatives, S- for
// stakeholders, and so on) so ids stay recognizable in exports and logs. The
// suffix is a UUID, which makes collisions a non-issue even across portfolios
// with tens of thousands of entities.
package ids

import "github.com/google/uuid"

// Entity type prefixes.
const (
	PrefixInitiative  = "INI-"
	PrefixStakeholder = "S-"
	PrefixTargetGroup = "TG-"
	PrefixImpact      = "I-"
	PrefixAction      = "A-"
	PrefixArtifact    = "ART-"
	PrefixProposal    = "P-"
)

// New returns a fresh id with the given entity-type prefix.
func New(prefix string) string {
	return prefix + uuid.New().String()
}
