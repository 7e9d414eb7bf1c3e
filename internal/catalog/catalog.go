// Package catalog is the static registry of installable profiles and
// templates for the Kaspa stack. Definitions live in embedded YAML and are
// read-only after init.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed data/profiles.yaml
var profilesYAML embed.FS

//go:embed data/templates.yaml
var templatesYAML embed.FS

// ErrNotFound marks lookups of unknown profile or template IDs.
var ErrNotFound = errors.New("not found")

type profilesData struct {
	Profiles []Profile `yaml:"profiles"`
}

type templatesData struct {
	Templates []Template `yaml:"templates"`
}

var (
	profiles      map[string]Profile
	profileOrder  []string
	templates     map[string]Template
	templateOrder []string
)

func init() {
	data, err := profilesYAML.ReadFile("data/profiles.yaml")
	if err != nil {
		log.Fatalf("Failed to read profiles.yaml: %v", err)
	}

	var pd profilesData
	if err := yaml.Unmarshal(data, &pd); err != nil {
		log.Fatalf("Failed to parse profiles.yaml: %v", err)
	}

	profiles = make(map[string]Profile, len(pd.Profiles))
	for _, p := range pd.Profiles {
		profiles[p.ID] = p
		profileOrder = append(profileOrder, p.ID)
	}

	data, err = templatesYAML.ReadFile("data/templates.yaml")
	if err != nil {
		log.Fatalf("Failed to read templates.yaml: %v", err)
	}

	var td templatesData
	if err := yaml.Unmarshal(data, &td); err != nil {
		log.Fatalf("Failed to parse templates.yaml: %v", err)
	}

	templates = make(map[string]Template, len(td.Templates))
	for _, t := range td.Templates {
		templates[t.ID] = t
		templateOrder = append(templateOrder, t.ID)
	}

	if err := checkDefinitions(); err != nil {
		log.Fatalf("Invalid catalog data: %v", err)
	}
}

// checkDefinitions rejects catalog data that violates structural invariants:
// dangling references, and profiles that both require and forbid another.
func checkDefinitions() error {
	for _, id := range profileOrder {
		p := profiles[id]

		if p.PrerequisitesMode != "" && p.PrerequisitesMode != "any" && p.PrerequisitesMode != "all" {
			return fmt.Errorf("profile %s: prerequisites_mode %q is not any/all", id, p.PrerequisitesMode)
		}

		forbidden := make(map[string]bool, len(p.Conflicts))
		for _, c := range p.Conflicts {
			forbidden[c] = true
		}
		for _, d := range append(append([]string{}, p.Dependencies...), p.Prerequisites...) {
			if forbidden[d] {
				return fmt.Errorf("profile %s both requires and conflicts with %s", id, d)
			}
		}
		for _, d := range p.Dependencies {
			if _, ok := profiles[d]; !ok {
				return fmt.Errorf("profile %s depends on unknown profile %s", id, d)
			}
		}
	}
	return nil
}

// GetProfile returns the profile for id, or false if the catalog has no such
// profile. Legacy IDs are not resolved here; see MigrateProfileID.
func GetProfile(id string) (Profile, bool) {
	p, ok := profiles[id]
	return p, ok
}

// AllProfiles returns every profile in catalog order.
func AllProfiles() []Profile {
	out := make([]Profile, 0, len(profileOrder))
	for _, id := range profileOrder {
		out = append(out, profiles[id])
	}
	return out
}

// ProfilesByCategory filters profiles by their category tag.
func ProfilesByCategory(category string) []Profile {
	var out []Profile
	for _, id := range profileOrder {
		if profiles[id].Category == category {
			out = append(out, profiles[id])
		}
	}
	return out
}

// GetTemplate returns the template for id. Legacy template IDs resolve to
// their current target with a logged deprecation warning.
func GetTemplate(id string) (Template, bool) {
	if t, ok := templates[id]; ok {
		return t, true
	}
	if target, ok := templateIDMigration[id]; ok {
		log.Printf("template id %q is deprecated, use %q", id, target)
		t, ok := templates[target]
		return t, ok
	}
	return Template{}, false
}

// AllTemplates returns current templates in catalog order. Deprecated
// aliases are never materialized, so they do not appear here.
func AllTemplates() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, id := range templateOrder {
		out = append(out, templates[id])
	}
	return out
}

// TemplatesByCategory filters templates by category.
func TemplatesByCategory(category string) []Template {
	var out []Template
	for _, id := range templateOrder {
		if templates[id].Category == category {
			out = append(out, templates[id])
		}
	}
	return out
}

// TemplatesByUseCase filters templates by use case.
func TemplatesByUseCase(useCase string) []Template {
	var out []Template
	for _, id := range templateOrder {
		if templates[id].UseCase == useCase {
			out = append(out, templates[id])
		}
	}
	return out
}

// ApplyTemplate shallow-merges base with the template's config. The template
// wins on key collision.
func ApplyTemplate(templateID string, base map[string]string) (map[string]string, error) {
	t, ok := GetTemplate(templateID)
	if !ok {
		return nil, fmt.Errorf("template %q: %w", templateID, ErrNotFound)
	}

	merged := make(map[string]string, len(base)+len(t.Config))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range t.Config {
		merged[k] = v
	}
	return merged, nil
}

// TemplateCheck is the result of validating a template definition.
type TemplateCheck struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateTemplate checks that every profile a template references exists
// (directly or via migration) and that the template contains no conflicting
// profile pair. Missing values for required config keys are warnings only.
func ValidateTemplate(templateID string) (TemplateCheck, error) {
	t, ok := GetTemplate(templateID)
	if !ok {
		return TemplateCheck{}, fmt.Errorf("template %q: %w", templateID, ErrNotFound)
	}

	check := TemplateCheck{Valid: true}

	resolved := MigrateProfileIDs(t.Profiles)
	present := make(map[string]bool, len(resolved))
	for _, id := range resolved {
		if _, ok := profiles[id]; !ok {
			check.Errors = append(check.Errors, fmt.Sprintf("unknown profile %q", id))
			continue
		}
		present[id] = true
	}

	for _, id := range resolved {
		p, ok := profiles[id]
		if !ok {
			continue
		}
		for _, c := range p.Conflicts {
			if present[c] {
				check.Errors = append(check.Errors, fmt.Sprintf("profiles %q and %q conflict", id, c))
			}
		}
		for _, key := range p.Configuration.Required {
			if _, ok := t.Config[key]; !ok {
				check.Warnings = append(check.Warnings, fmt.Sprintf("required config %s not preset for profile %q", key, id))
			}
		}
	}

	check.Valid = len(check.Errors) == 0
	return check, nil
}

// CustomTemplate is user input for CreateCustomTemplate.
type CustomTemplate struct {
	ID          string
	Name        string
	Description string
	Profiles    []string
	Config      map[string]string
}

// CreateCustomTemplate builds a one-off template from an explicit profile
// selection. Resources are always computed from the profiles, never taken
// from the caller.
func CreateCustomTemplate(data CustomTemplate) (Template, error) {
	if data.ID == "" || data.Name == "" || data.Description == "" {
		return Template{}, fmt.Errorf("custom template requires id, name and description")
	}
	if len(data.Profiles) == 0 {
		return Template{}, fmt.Errorf("custom template requires at least one profile")
	}
	if data.Config == nil {
		return Template{}, fmt.Errorf("custom template requires a config map")
	}

	resolved := MigrateProfileIDs(data.Profiles)
	for _, id := range resolved {
		if _, ok := profiles[id]; !ok {
			return Template{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
		}
	}

	return Template{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    "custom",
		UseCase:     "custom",
		Profiles:    resolved,
		Config:      data.Config,
		Resources:   CalculateResources(resolved),
	}, nil
}
