// Package validate checks whether a profile selection is feasible before any
// configuration is generated or containers are touched.
package validate

import (
	"fmt"
	"strings"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
)

// Issue types surfaced in Result. Problems are collected, never raised, so a
// caller can show the user every issue at once.
const (
	IssueMissingPrerequisite = "missing_prerequisite"
	IssueProfileConflict     = "profile_conflict"
	IssuePortConflict        = "port_conflict"
	IssueUnknownProfile      = "unknown_profile"
	IssueHighResources       = "high_resources"
)

// highMemoryThresholdGB is the fixed aggregate minMemory above which a
// selection gets a high_resources warning.
const highMemoryThresholdGB = 32

// Issue is one validation error or warning.
type Issue struct {
	Type      string
	ProfileID string
	Message   string
}

// Result is the outcome of ValidateSelection. Valid is true iff Errors is
// empty; Warnings never affect it.
type Result struct {
	Valid            bool
	Errors           []Issue
	Warnings         []Issue
	ResolvedProfiles []string
	Requirements     catalog.Resources
}

// Selection validates a candidate profile selection: legacy IDs are migrated,
// the dependency closure is resolved, then prerequisites (on the originally
// requested profiles only), conflicts, port collisions and aggregate resource
// requirements are checked.
//
// Conflict pairs are reported once from each side, matching how each profile
// declares them; they are deliberately not deduplicated.
func Selection(ids []string) Result {
	requested := catalog.MigrateProfileIDs(ids)
	resolved := resolver.Resolve(ids)

	res := Result{ResolvedProfiles: resolved}

	inClosure := make(map[string]bool, len(resolved))
	for _, id := range resolved {
		inClosure[id] = true
	}

	for _, id := range requested {
		p, ok := catalog.GetProfile(id)
		if !ok {
			res.Errors = append(res.Errors, Issue{
				Type:      IssueUnknownProfile,
				ProfileID: id,
				Message:   fmt.Sprintf("profile %q does not exist", id),
			})
			continue
		}
		res.Errors = append(res.Errors, checkPrerequisites(p, inClosure)...)
	}

	for _, id := range resolved {
		p, _ := catalog.GetProfile(id)
		for _, c := range p.Conflicts {
			if inClosure[c] {
				res.Errors = append(res.Errors, Issue{
					Type:      IssueProfileConflict,
					ProfileID: id,
					Message:   fmt.Sprintf("profile %q cannot be combined with %q", id, c),
				})
			}
		}
	}

	for _, pc := range resolver.DetectPortConflicts(ids) {
		res.Errors = append(res.Errors, Issue{
			Type:      IssuePortConflict,
			ProfileID: pc.Profile,
			Message:   fmt.Sprintf("port %d already claimed by %q", pc.Port, pc.ClaimedBy),
		})
	}

	res.Requirements = catalog.CalculateResources(resolved)
	if res.Requirements.MinMemory > highMemoryThresholdGB {
		res.Warnings = append(res.Warnings, Issue{
			Type:    IssueHighResources,
			Message: fmt.Sprintf("selection needs %.0f GB memory minimum, above the %d GB threshold", res.Requirements.MinMemory, highMemoryThresholdGB),
		})
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func checkPrerequisites(p catalog.Profile, inClosure map[string]bool) []Issue {
	if len(p.Prerequisites) == 0 {
		return nil
	}

	if p.PrerequisitesMode == "any" {
		for _, pre := range p.Prerequisites {
			if inClosure[pre] {
				return nil
			}
		}
		return []Issue{{
			Type:      IssueMissingPrerequisite,
			ProfileID: p.ID,
			Message:   fmt.Sprintf("profile %q needs one of: %s", p.ID, strings.Join(p.Prerequisites, ", ")),
		}}
	}

	var issues []Issue
	for _, pre := range p.Prerequisites {
		if !inClosure[pre] {
			issues = append(issues, Issue{
				Type:      IssueMissingPrerequisite,
				ProfileID: p.ID,
				Message:   fmt.Sprintf("profile %q needs %q in the selection", p.ID, pre),
			})
		}
	}
	return issues
}
