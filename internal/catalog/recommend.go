package catalog

import "sort"

// Recommendation is one scored template for the host at hand.
type Recommendation struct {
	Template     Template
	Score        int
	Recommended  bool
	Insufficient []string
}

const (
	recommendedTierPoints = 3
	minimumTierPoints     = 1
	useCaseMatchPoints    = 5
	beginnerBonusPoints   = 2
	recommendThreshold    = 5
)

// TemplateRecommendations ranks current templates against the host's
// resources and the stated use case. Dynamic templates are skipped since
// they have no resource profile to score.
func TemplateRecommendations(sys SystemResources, useCase string) []Recommendation {
	var out []Recommendation
	for _, t := range AllTemplates() {
		if t.Dynamic {
			continue
		}

		rec := Recommendation{Template: t}

		rec.Score += tier(&rec, "memory", sys.MemoryGB, t.Resources.MinMemory, t.Resources.RecommendedMemory)
		rec.Score += tier(&rec, "cpu", sys.CPUCores, t.Resources.MinCPU, t.Resources.RecommendedCPU)
		rec.Score += tier(&rec, "disk", sys.DiskGB, t.Resources.MinDisk, t.Resources.RecommendedDisk)

		if useCase != "" && t.UseCase == useCase {
			rec.Score += useCaseMatchPoints
		}
		if useCase == "personal" && t.Category == "beginner" {
			rec.Score += beginnerBonusPoints
		}

		rec.Recommended = rec.Score >= recommendThreshold && len(rec.Insufficient) == 0
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func tier(rec *Recommendation, dimension string, have, min, recommended float64) int {
	switch {
	case have >= recommended:
		return recommendedTierPoints
	case have >= min:
		return minimumTierPoints
	default:
		rec.Insufficient = append(rec.Insufficient, dimension)
		return 0
	}
}
