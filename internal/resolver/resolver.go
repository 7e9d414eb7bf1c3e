// Package resolver expands profile selections into their dependency closure
// and derives a deterministic startup order for the resulting services.
package resolver

import (
	"log"
	"sort"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
)

// Resolve returns the transitive dependency closure of ids. Only hard
// `dependencies` edges are followed; prerequisites are selection-time checks
// and never auto-included. Traversal is iterative, legacy IDs found mid-walk
// are migrated inline, and unknown IDs are skipped with a warning.
func Resolve(ids []string) []string {
	// Pushed in reverse so the LIFO walk visits profiles in request order;
	// the first profile listed is the first to claim its ports.
	var stack []string
	push := func(ids []string) {
		for i := len(ids) - 1; i >= 0; i-- {
			stack = append(stack, ids[i])
		}
	}
	push(catalog.MigrateProfileIDs(ids))

	seen := make(map[string]bool, len(stack))
	var out []string

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if catalog.IsLegacyProfileID(id) {
			push(catalog.MigrateProfileID(id))
			continue
		}
		if seen[id] {
			continue
		}

		p, ok := catalog.GetProfile(id)
		if !ok {
			log.Printf("skipping unknown profile %q during dependency resolution", id)
			continue
		}

		seen[id] = true
		out = append(out, id)
		push(p.Dependencies)
	}

	return out
}

// ServiceStart is one service in the computed startup sequence, tagged with
// the profile that owns it.
type ServiceStart struct {
	Profile string
	Service catalog.Service
}

// StartupOrder resolves dependencies, flattens every profile's services and
// sorts by (startup_order asc, service name lexicographic). The name tiebreak
// makes the output reproducible for identical input.
func StartupOrder(ids []string) []ServiceStart {
	var out []ServiceStart
	for _, id := range Resolve(ids) {
		p, _ := catalog.GetProfile(id)
		for _, svc := range p.Services {
			out = append(out, ServiceStart{Profile: id, Service: svc})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Service.StartupOrder != out[j].Service.StartupOrder {
			return out[i].Service.StartupOrder < out[j].Service.StartupOrder
		}
		return out[i].Service.Name < out[j].Service.Name
	})
	return out
}

// DetectCycles runs a depth-first search over `dependencies` edges and
// returns every cycle found, each as the path slice from the repeated
// profile back to itself inclusive.
func DetectCycles(ids []string) [][]string {
	return detectCycles(catalog.MigrateProfileIDs(ids), func(id string) ([]string, bool) {
		p, ok := catalog.GetProfile(id)
		if !ok {
			return nil, false
		}
		return p.Dependencies, true
	})
}

func detectCycles(ids []string, deps func(string) ([]string, bool)) [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var path []string

	var walk func(id string)
	walk = func(id string) {
		if onStack[id] {
			start := 0
			for i, n := range path {
				if n == id {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, path[start:]...), id)
			cycles = append(cycles, cycle)
			return
		}
		if visited[id] {
			return
		}

		edges, ok := deps(id)
		if !ok {
			return
		}

		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, dep := range edges {
			walk(dep)
		}

		path = path[:len(path)-1]
		onStack[id] = false
	}

	for _, id := range ids {
		walk(id)
	}
	return cycles
}

// PortConflict records two profiles in the same resolved closure claiming
// one TCP port.
type PortConflict struct {
	Port      int
	ClaimedBy string
	Profile   string
}

// DetectPortConflicts resolves the full closure of ids and reports pairwise
// port collisions. Bookkeeping is first-writer-wins: the first profile to
// claim a port is recorded, later claimants each produce one conflict.
func DetectPortConflicts(ids []string) []PortConflict {
	var conflicts []PortConflict
	claimed := make(map[int]string)

	for _, id := range Resolve(ids) {
		p, _ := catalog.GetProfile(id)
		for _, port := range p.Ports {
			if owner, ok := claimed[port]; ok {
				conflicts = append(conflicts, PortConflict{Port: port, ClaimedBy: owner, Profile: id})
				continue
			}
			claimed[port] = id
		}
	}
	return conflicts
}
