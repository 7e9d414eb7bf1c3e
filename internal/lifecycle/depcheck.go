package lifecycle

import (
	"fmt"
	"strings"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
	"github.com/kaspa-aio/kaspactl/internal/validate"
)

// AdditionCheck is the feasibility verdict for adding one profile to a live
// installation.
type AdditionCheck struct {
	CanAdd      bool
	NewProfiles []string
	Issues      []validate.Issue
	Warnings    []validate.Issue
}

// RemovalCheck is the feasibility verdict for removing one profile.
type RemovalCheck struct {
	CanRemove  bool
	Dependents []string
	Issues     []validate.Issue
}

// ValidateAddition checks the new profile against the profiles already live,
// not a from-scratch selection: only issues introduced by the addition count.
func ValidateAddition(profileID string, current []string) AdditionCheck {
	check := AdditionCheck{}

	// Legacy IDs expand here, so bundle aliases like kaspa-aio validate
	// every member rather than just the first.
	targets := catalog.MigrateProfileIDs([]string{profileID})
	for _, id := range targets {
		if _, ok := catalog.GetProfile(id); !ok {
			check.Issues = append(check.Issues, validate.Issue{
				Type:      validate.IssueUnknownProfile,
				ProfileID: id,
				Message:   fmt.Sprintf("profile %q does not exist", id),
			})
			return check
		}
	}

	currentClosure := resolver.Resolve(current)
	combined := resolver.Resolve(append(append([]string{}, current...), targets...))

	existing := make(map[string]bool, len(currentClosure))
	for _, id := range currentClosure {
		existing[id] = true
	}

	for _, id := range combined {
		if existing[id] {
			continue
		}
		check.NewProfiles = append(check.NewProfiles, id)
	}

	allInstalled := true
	for _, id := range targets {
		if !existing[id] {
			allInstalled = false
			break
		}
	}
	if allInstalled {
		check.Issues = append(check.Issues, validate.Issue{
			Type:      validate.IssueProfileConflict,
			ProfileID: profileID,
			Message:   fmt.Sprintf("profile %q is already installed", profileID),
		})
		return check
	}

	full := validate.Selection(combined)
	newSet := make(map[string]bool, len(check.NewProfiles))
	for _, id := range check.NewProfiles {
		newSet[id] = true
	}
	for _, issue := range full.Errors {
		if newSet[issue.ProfileID] || mentionsAny(issue.Message, check.NewProfiles) {
			check.Issues = append(check.Issues, issue)
		}
	}
	check.Warnings = full.Warnings

	check.CanAdd = len(check.Issues) == 0
	return check
}

// mentionsAny matches issues raised from the existing installation's side
// against the profiles the addition would introduce.
func mentionsAny(message string, ids []string) bool {
	for _, id := range ids {
		if strings.Contains(message, "\""+id+"\"") {
			return true
		}
	}
	return false
}

// ValidateRemoval refuses to remove a profile that the remaining installation
// still depends on, either via hard dependencies or as the last satisfier of
// an any-of prerequisite.
func ValidateRemoval(profileID string, current []string) RemovalCheck {
	check := RemovalCheck{}

	migrated := catalog.MigrateProfileIDs([]string{profileID})
	if len(migrated) == 1 {
		profileID = migrated[0]
	}

	installed := false
	for _, id := range catalog.MigrateProfileIDs(current) {
		if id == profileID {
			installed = true
			break
		}
	}
	if !installed {
		check.Issues = append(check.Issues, validate.Issue{
			Type:      validate.IssueUnknownProfile,
			ProfileID: profileID,
			Message:   fmt.Sprintf("profile %q is not installed", profileID),
		})
		return check
	}

	remaining := make([]string, 0, len(current))
	for _, id := range catalog.MigrateProfileIDs(current) {
		if id != profileID {
			remaining = append(remaining, id)
		}
	}
	remainingSet := make(map[string]bool, len(remaining))
	for _, id := range remaining {
		remainingSet[id] = true
	}

	for _, id := range remaining {
		p, ok := catalog.GetProfile(id)
		if !ok {
			continue
		}

		for _, dep := range resolver.Resolve([]string{id}) {
			if dep == profileID {
				check.Dependents = append(check.Dependents, id)
				check.Issues = append(check.Issues, validate.Issue{
					Type:      validate.IssueProfileConflict,
					ProfileID: id,
					Message:   fmt.Sprintf("profile %q depends on %q, remove it first", id, profileID),
				})
			}
		}

		if lastPrerequisite(p, profileID, remainingSet) {
			check.Dependents = append(check.Dependents, id)
			check.Issues = append(check.Issues, validate.Issue{
				Type:      validate.IssueMissingPrerequisite,
				ProfileID: id,
				Message:   fmt.Sprintf("profile %q requires %q as its last remaining prerequisite", id, profileID),
			})
		}
	}

	check.CanRemove = len(check.Issues) == 0
	return check
}

// lastPrerequisite reports whether removing removeID leaves p without any
// satisfied prerequisite.
func lastPrerequisite(p catalog.Profile, removeID string, remaining map[string]bool) bool {
	if len(p.Prerequisites) == 0 {
		return false
	}

	references := false
	for _, pre := range p.Prerequisites {
		if pre == removeID {
			references = true
			break
		}
	}
	if !references {
		return false
	}

	if p.PrerequisitesMode == "any" {
		for _, pre := range p.Prerequisites {
			if pre != removeID && remaining[pre] {
				return false
			}
		}
	}
	return true
}
