// Package export serializes the portfolio for download and merges imported
// documents back in.
//
// The CSV flavor is pinned to the format downstream spreadsheets already
// ingest: every field is double-quoted with embedded quotes doubled, missing
// values are empty strings, and the set-valued action columns are ;-joined.
// encoding/csv quotes only when necessary, so the rows are written by hand.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

// JSON renders the whole portfolio document, pretty-printed.
func JSON(p *domain.Portfolio) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// CSV kinds.
const (
	KindStakeholders = "stakeholders"
	KindImpacts      = "impacts"
	KindActions      = "actions"
)

// CSV renders one collection as CSV with its fixed column set.
func CSV(p *domain.Portfolio, kind string) ([]byte, error) {
	var b strings.Builder
	switch kind {
	case KindStakeholders:
		writeRow(&b, []string{"id", "initiative_id", "name", "role", "function", "org_unit", "influence", "interest", "readiness", "notes"}, false)
		for _, s := range p.Stakeholders {
			writeRow(&b, []string{s.ID, s.InitiativeID, s.Name, s.Role, s.Function, s.OrgUnit, s.Influence, s.Interest, s.Readiness, s.Notes}, true)
		}
	case KindImpacts:
		writeRow(&b, []string{"id", "initiative_id", "target_group_id", "dimension", "change_description", "impact_level", "criticality", "training_need", "comms_need"}, false)
		for _, it := range p.ImpactItems {
			writeRow(&b, []string{it.ID, it.InitiativeID, it.TargetGroupID, it.Dimension, it.ChangeDescription, it.ImpactLevel, it.Criticality, it.TrainingNeed, it.CommsNeed}, true)
		}
	case KindActions:
		writeRow(&b, []string{"id", "initiative_id", "type", "title", "adkar_tags", "target_group_ids", "owner_person_id", "due_date", "status"}, false)
		for _, a := range p.Actions {
			writeRow(&b, []string{a.ID, a.InitiativeID, a.Type, a.Title, strings.Join(a.AdkarTags, ";"), strings.Join(a.TargetGroupIDs, ";"), a.OwnerPersonID, a.DueDate, a.Status}, true)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrExportUnknown, kind)
	}
	return []byte(strings.TrimSuffix(b.String(), "\n")), nil
}

func writeRow(b *strings.Builder, fields []string, quote bool) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if quote {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
	b.WriteByte('\n')
}

// MergeImport parses data and shallow-merges it over current: every top-level
// collection present in the payload replaces the matching collection, any
// collection absent from the payload is kept. The payload must at least carry
// an initiatives key or the current document is returned untouched along with
// ErrImportFormat. Imported ids are preserved, never regenerated.
func MergeImport(current *domain.Portfolio, data []byte) (*domain.Portfolio, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if _, ok := raw["initiatives"]; !ok {
		return nil, fmt.Errorf("%w: missing initiatives", domain.ErrImportFormat)
	}

	next := current.Clone()
	collections := []struct {
		key  string
		dest any
	}{
		{"initiatives", &next.Initiatives},
		{"stakeholders", &next.Stakeholders},
		{"targetGroups", &next.TargetGroups},
		{"impactItems", &next.ImpactItems},
		{"actions", &next.Actions},
		{"artifacts", &next.Artifacts},
		{"changeProposals", &next.ChangeProposals},
	}
	for _, c := range collections {
		msg, ok := raw[c.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, c.dest); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrImportFormat, c.key, err)
		}
	}
	next.Normalize()
	return next, nil
}
