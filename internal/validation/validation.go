// Package validation checks enum-valued fields at the API boundary.
//
// Foreign references are deliberately not validated anywhere: the data model
// tolerates dangling references and consumers render absence. What is checked
// here are the closed value sets (priorities, levels, readiness, roles,
// dimensions, action types and statuses) and the due-date shape.
package validation

import (
	"fmt"
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/domain"
)

func oneOf(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", allowed)
}

// oneOfOrEmpty accepts the empty string, for optional enum fields.
func oneOfOrEmpty(value string, allowed []string) error {
	if value == "" {
		return nil
	}
	return oneOf(value, allowed)
}

// ValidatePriority checks an initiative priority.
func ValidatePriority(v string) error { return oneOf(v, domain.Priorities) }

// ValidateLevel checks an H/M/L rating.
func ValidateLevel(v string) error { return oneOf(v, domain.Levels) }

// ValidateReadiness checks a stakeholder readiness value.
func ValidateReadiness(v string) error { return oneOf(v, domain.ReadinessValues) }

// ValidateRole checks a stakeholder role.
func ValidateRole(v string) error { return oneOf(v, domain.Roles) }

// ValidateDimension checks an impact dimension.
func ValidateDimension(v string) error { return oneOf(v, domain.Dimensions) }

// ValidateActionType checks an action type.
func ValidateActionType(v string) error { return oneOf(v, domain.ActionTypes) }

// ValidateActionStatus checks an action status; empty means "default".
func ValidateActionStatus(v string) error { return oneOfOrEmpty(v, domain.ActionStatuses) }

// ValidateAdkarTags checks every tag against the five ADKAR stages.
func ValidateAdkarTags(tags []string) error {
	for _, t := range tags {
		if err := oneOf(t, domain.AdkarStages); err != nil {
			return fmt.Errorf("tag %q %v", t, err)
		}
	}
	return nil
}

// ValidateDueDate checks an optional ISO date (YYYY-MM-DD).
func ValidateDueDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("must be an ISO date (YYYY-MM-DD)")
	}
	return nil
}

// ValidateSize checks a target group head count.
func ValidateSize(v int) error {
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
