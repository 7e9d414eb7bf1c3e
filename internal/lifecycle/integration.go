package lifecycle

import (
	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
)

// IntegrationOption is one named choice for how a newly added profile should
// connect to what is already running, with the literal config patch it
// applies.
type IntegrationOption struct {
	Type        string
	Name        string
	Impact      string
	Recommended bool
	Config      map[string]string
}

// IntegrationMenu is the full answer of GetIntegrationOptions: the choices
// plus the prospective startup order and resource delta of the combined
// selection.
type IntegrationMenu struct {
	ProfileID     string
	Options       []IntegrationOption
	StartupOrder  []resolver.ServiceStart
	ResourceDelta catalog.Resources
}

// GetIntegrationOptions is a pure query: it returns the integration choices
// for known profile-pair combinations and never touches disk or containers.
func GetIntegrationOptions(profileID string, current []string) IntegrationMenu {
	menu := IntegrationMenu{ProfileID: profileID}

	currentSet := make(map[string]bool)
	for _, id := range resolver.Resolve(current) {
		currentSet[id] = true
	}
	hasNode := currentSet["kaspa-node"]
	hasArchive := currentSet["kaspa-archive-node"]

	switch profileID {
	case "indexer-services":
		if hasNode || hasArchive {
			nodeURL := "ws://kaspad:17110"
			if hasArchive {
				nodeURL = "ws://kaspad-archive:17110"
			}
			menu.Options = append(menu.Options, IntegrationOption{
				Type:        "local_node",
				Name:        "Index from your local node",
				Impact:      "Indexer syncs from your own node over the internal network; no external traffic.",
				Recommended: true,
				Config: map[string]string{
					"INDEXER_NODE_URL":   nodeURL,
					"INDEXER_PUBLIC_API": "false",
				},
			})
		}
		if p, ok := catalog.GetProfile("indexer-services"); ok && p.PublicIndexerAvailable {
			menu.Options = append(menu.Options, IntegrationOption{
				Type:   "public_api",
				Name:   "Use the public Kaspa API",
				Impact: "Skips local indexing; queries go to " + p.PublicIndexerURL + " and depend on its availability.",
				Config: map[string]string{
					"INDEXER_NODE_URL":   p.PublicIndexerURL,
					"INDEXER_PUBLIC_API": "true",
				},
			})
		}

	case "kaspa-user-applications":
		if currentSet["indexer-services"] {
			menu.Options = append(menu.Options, IntegrationOption{
				Type:        "local_indexer",
				Name:        "Connect apps to your local indexer",
				Impact:      "Explorer and social apps query your own REST API.",
				Recommended: true,
				Config: map[string]string{
					"APPS_API_URL": "http://kaspa-rest-server:8080",
				},
			})
		}
		menu.Options = append(menu.Options, IntegrationOption{
			Type:   "public_indexer",
			Name:   "Connect apps to the public API",
			Impact: "Apps work without local indexer services but share public rate limits.",
			Config: map[string]string{
				"APPS_API_URL": "https://api.kaspa.org",
			},
		})

	case "mining":
		if hasNode {
			menu.Options = append(menu.Options, IntegrationOption{
				Type:        "local_node",
				Name:        "Mine against your local node",
				Impact:      "Block templates come from your own node; lowest latency.",
				Recommended: true,
				Config: map[string]string{
					"MINING_NODE_URL": "kaspad:16110",
				},
			})
		}
		if hasArchive {
			menu.Options = append(menu.Options, IntegrationOption{
				Type:        "local_archive",
				Name:        "Mine against your archive node",
				Impact:      "Uses the archive node's RPC; heavier node but same templates.",
				Recommended: !hasNode,
				Config: map[string]string{
					"MINING_NODE_URL": "kaspad-archive:16110",
				},
			})
		}
	}

	combined := append(append([]string{}, current...), profileID)
	menu.StartupOrder = resolver.StartupOrder(combined)
	menu.ResourceDelta = resourceDelta(
		catalog.CalculateResources(resolver.Resolve(current)),
		catalog.CalculateResources(resolver.Resolve(combined)),
	)
	return menu
}

func resourceDelta(before, after catalog.Resources) catalog.Resources {
	return catalog.Resources{
		MinMemory:         after.MinMemory - before.MinMemory,
		MinCPU:            after.MinCPU - before.MinCPU,
		MinDisk:           after.MinDisk - before.MinDisk,
		RecommendedMemory: after.RecommendedMemory - before.RecommendedMemory,
		RecommendedCPU:    after.RecommendedCPU - before.RecommendedCPU,
		RecommendedDisk:   after.RecommendedDisk - before.RecommendedDisk,
	}
}
