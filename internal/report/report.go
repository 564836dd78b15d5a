// Package report computes derived views from a portfolio snapshot: ADKAR
// coverage, the impact heatmap, action status tallies, the status report
// summary and the timeline grouping. Everything here is a pure function over
// the slices it is given; nothing mutates the portfolio.
package report

import (
	"sort"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

// UndatedBucket is the timeline key for actions without a due date. Bucket
// ordering is pinned explicitly: dated months ascending, this one always last.
const UndatedBucket = "undated"

// AdkarCoverage counts, per ADKAR stage, the actions tagged with that stage.
// When targetGroupID is non-empty only actions targeting that group count.
// The result always carries all five stages; a zero count is a coverage gap.
func AdkarCoverage(actions []domain.Action, targetGroupID string) map[string]int {
	cov := make(map[string]int, len(domain.AdkarStages))
	for _, stage := range domain.AdkarStages {
		cov[stage] = 0
	}
	for _, a := range actions {
		if targetGroupID != "" && !contains(a.TargetGroupIDs, targetGroupID) {
			continue
		}
		for _, tag := range a.AdkarTags {
			if _, ok := cov[tag]; ok {
				cov[tag]++
			}
		}
	}
	return cov
}

// AdkarGaps returns the stages with zero coverage, in model order.
func AdkarGaps(cov map[string]int) []string {
	gaps := []string{}
	for _, stage := range domain.AdkarStages {
		if cov[stage] == 0 {
			gaps = append(gaps, stage)
		}
	}
	return gaps
}

// MaxImpactLevel reduces the impact items matching both filters to their
// maximum severity with fixed precedence H > M > L. Returns "" when no item
// matches, which consumers render as absence.
func MaxImpactLevel(items []domain.ImpactItem, targetGroupID, dimension string) string {
	max := ""
	for _, it := range items {
		if it.TargetGroupID != targetGroupID || it.Dimension != dimension {
			continue
		}
		switch it.ImpactLevel {
		case "H":
			return "H"
		case "M":
			max = "M"
		default:
			if max == "" {
				max = "L"
			}
		}
	}
	return max
}

// HeatmapRow is one target group's severity-maximum per dimension.
type HeatmapRow struct {
	TargetGroupID string            `json:"target_group_id"`
	Name          string            `json:"name"`
	Size          int               `json:"size"`
	Levels        map[string]string `json:"levels"` // dimension -> H/M/L, absent when no impact
}

// Heatmap builds the per-group, per-dimension grid. Rows follow the target
// group collection order.
func Heatmap(groups []domain.TargetGroup, items []domain.ImpactItem) []HeatmapRow {
	rows := []HeatmapRow{}
	for _, tg := range groups {
		row := HeatmapRow{
			TargetGroupID: tg.ID,
			Name:          tg.Name,
			Size:          tg.Size,
			Levels:        map[string]string{},
		}
		for _, dim := range domain.Dimensions {
			if lvl := MaxImpactLevel(items, tg.ID, dim); lvl != "" {
				row.Levels[dim] = lvl
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// StatusTally counts actions per status.
type StatusTally struct {
	Planned    int `json:"planned"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

// Tally counts the actions per status.
func Tally(actions []domain.Action) StatusTally {
	var t StatusTally
	for _, a := range actions {
		switch a.Status {
		case domain.StatusPlanned:
			t.Planned++
		case domain.StatusInProgress:
			t.InProgress++
		case domain.StatusDone:
			t.Done++
		}
	}
	return t
}

// CompletionPercent is done/total rounded to whole percent, 0 for no actions.
func CompletionPercent(actions []domain.Action) int {
	if len(actions) == 0 {
		return 0
	}
	done := 0
	for _, a := range actions {
		if a.Status == domain.StatusDone {
			done++
		}
	}
	return int(float64(done)/float64(len(actions))*100 + 0.5)
}

// StakeholderRisk is a resistant or skeptical stakeholder flagged for the
// report, with high influence called out.
type StakeholderRisk struct {
	Stakeholder   domain.Stakeholder `json:"stakeholder"`
	HighInfluence bool               `json:"high_influence"`
}

// GroupGaps lists one target group's uncovered ADKAR stages.
type GroupGaps struct {
	TargetGroupID string   `json:"target_group_id"`
	Name          string   `json:"name"`
	Gaps          []string `json:"gaps"`
}

// Summary is the status report bundle for one initiative.
type Summary struct {
	Initiative        domain.Initiative   `json:"initiative"`
	CompletionPercent int                 `json:"completion_percent"`
	StatusTally       StatusTally         `json:"status_tally"`
	StakeholderCount  int                 `json:"stakeholder_count"`
	AtRisk            []StakeholderRisk   `json:"at_risk"`
	HighImpacts       []domain.ImpactItem `json:"high_impacts"`
	ImpactCount       int                 `json:"impact_count"`
	TargetGroupCount  int                 `json:"target_group_count"`
	PersonsReached    int                 `json:"persons_reached"`
	AdkarCoverage     map[string]int      `json:"adkar_coverage"`
	AdkarGaps         []string            `json:"adkar_gaps"`
	GroupGaps         []GroupGaps         `json:"group_gaps"`
	Upcoming          []domain.Action     `json:"upcoming"`
}

// Summarize builds the status report for one initiative from its slices of
// the portfolio.
func Summarize(ini domain.Initiative, stakeholders []domain.Stakeholder, groups []domain.TargetGroup, items []domain.ImpactItem, actions []domain.Action) Summary {
	cov := AdkarCoverage(actions, "")

	atRisk := []StakeholderRisk{}
	for _, sh := range stakeholders {
		if sh.Readiness == "resistant" || sh.Readiness == "skeptical" {
			atRisk = append(atRisk, StakeholderRisk{Stakeholder: sh, HighInfluence: sh.Influence == "H"})
		}
	}

	high := []domain.ImpactItem{}
	for _, it := range items {
		if it.ImpactLevel == "H" {
			high = append(high, it)
		}
	}

	persons := 0
	groupGaps := []GroupGaps{}
	for _, tg := range groups {
		persons += tg.Size
		groupGaps = append(groupGaps, GroupGaps{
			TargetGroupID: tg.ID,
			Name:          tg.Name,
			Gaps:          AdkarGaps(AdkarCoverage(actions, tg.ID)),
		})
	}

	return Summary{
		Initiative:        ini,
		CompletionPercent: CompletionPercent(actions),
		StatusTally:       Tally(actions),
		StakeholderCount:  len(stakeholders),
		AtRisk:            atRisk,
		HighImpacts:       high,
		ImpactCount:       len(items),
		TargetGroupCount:  len(groups),
		PersonsReached:    persons,
		AdkarCoverage:     cov,
		AdkarGaps:         AdkarGaps(cov),
		GroupGaps:         groupGaps,
		Upcoming:          Upcoming(actions, 5),
	}
}

// Upcoming returns the n soonest-due incomplete actions: status not done and
// a due date present, ascending by due date. ISO dates are fixed width, so
// the lexicographic comparison is the chronological one. Ties keep collection
// order (stable sort).
func Upcoming(actions []domain.Action, n int) []domain.Action {
	open := []domain.Action{}
	for _, a := range actions {
		if a.Status != domain.StatusDone && a.DueDate != "" {
			open = append(open, a)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate < open[j].DueDate
	})
	if len(open) > n {
		open = open[:n]
	}
	return open
}

// TimelineBucket groups the actions due in one month.
type TimelineBucket struct {
	Month   string          `json:"month"` // YYYY-MM, or UndatedBucket
	Actions []domain.Action `json:"actions"`
}

// Timeline partitions actions by the year-month prefix of their due date.
// Dated buckets come first in ascending month order; the undated bucket, when
// present, is always last regardless of how its key would sort. Within a
// bucket actions are ordered by due date, ties keeping collection order.
func Timeline(actions []domain.Action) []TimelineBucket {
	byMonth := map[string][]domain.Action{}
	for _, a := range actions {
		key := UndatedBucket
		if len(a.DueDate) >= 7 {
			key = a.DueDate[:7]
		}
		byMonth[key] = append(byMonth[key], a)
	}

	months := []string{}
	for key := range byMonth {
		if key != UndatedBucket {
			months = append(months, key)
		}
	}
	sort.Strings(months)
	if _, ok := byMonth[UndatedBucket]; ok {
		months = append(months, UndatedBucket)
	}

	buckets := []TimelineBucket{}
	for _, key := range months {
		group := byMonth[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DueDate < group[j].DueDate
		})
		buckets = append(buckets, TimelineBucket{Month: key, Actions: group})
	}
	return buckets
}

// DimensionStat is the impact spread for one dimension on the overview.
type DimensionStat struct {
	Dimension string `json:"dimension"`
	Total     int    `json:"total"`
	High      int    `json:"high"`
}

// ImpactDistribution counts impacts (and high-severity impacts) per
// dimension, in fixed dimension order.
func ImpactDistribution(items []domain.ImpactItem) []DimensionStat {
	stats := []DimensionStat{}
	for _, dim := range domain.Dimensions {
		st := DimensionStat{Dimension: dim}
		for _, it := range items {
			if it.Dimension == dim {
				st.Total++
				if it.ImpactLevel == "H" {
					st.High++
				}
			}
		}
		stats = append(stats, st)
	}
	return stats
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
