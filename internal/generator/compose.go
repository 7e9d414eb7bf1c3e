package generator

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kaspa-aio/kaspactl/internal/resolver"
)

//go:embed data/compose
var composeFS embed.FS

// GenerateCompose materializes docker-compose.yml for the resolved closure of
// profileIDs by deep-merging each profile's embedded fragment over the base
// document. The enabled profile list and generation time are stamped under
// x-kaspactl so later runs can tell what produced the file.
func GenerateCompose(profileIDs []string) ([]byte, error) {
	base, err := composeFS.ReadFile("data/compose/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("read base compose fragment: %w", err)
	}

	merged := map[string]any{}
	if err := yaml.Unmarshal(base, &merged); err != nil {
		return nil, fmt.Errorf("parse base compose fragment: %w", err)
	}

	resolved := resolver.Resolve(profileIDs)
	for _, id := range resolved {
		data, err := composeFS.ReadFile("data/compose/" + id + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("profile %s has no compose fragment: %w", id, err)
		}
		var overlay map[string]any
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse compose fragment for %s: %w", id, err)
		}
		deepMerge(merged, overlay)
	}

	merged["x-kaspactl"] = map[string]any{
		"enabled_profiles": resolved,
		"generated_at":     time.Now().UTC().Format(time.RFC3339),
	}

	return yaml.Marshal(merged)
}

func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		existing, exists := dst[k]
		if !exists {
			dst[k] = v
			continue
		}

		dstMap, dstMapOK := existing.(map[string]any)
		srcMap, srcMapOK := v.(map[string]any)
		if dstMapOK && srcMapOK {
			deepMerge(dstMap, srcMap)
			continue
		}

		dstSlice, dstSliceOK := existing.([]any)
		srcSlice, srcSliceOK := v.([]any)
		if dstSliceOK && srcSliceOK {
			dst[k] = append(dstSlice, srcSlice...)
			continue
		}

		dst[k] = v
	}
}
