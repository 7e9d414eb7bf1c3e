package catalog

// CalculateResources aggregates requirements across a profile set: memory and
// disk add up, CPU takes the max (cores are shared, not partitioned). Unknown
// IDs contribute nothing.
func CalculateResources(ids []string) Resources {
	var agg Resources
	for _, id := range ids {
		p, ok := profiles[id]
		if !ok {
			continue
		}
		agg.MinMemory += p.Resources.MinMemory
		agg.MinDisk += p.Resources.MinDisk
		agg.RecommendedMemory += p.Resources.RecommendedMemory
		agg.RecommendedDisk += p.Resources.RecommendedDisk
		if p.Resources.MinCPU > agg.MinCPU {
			agg.MinCPU = p.Resources.MinCPU
		}
		if p.Resources.RecommendedCPU > agg.RecommendedCPU {
			agg.RecommendedCPU = p.Resources.RecommendedCPU
		}
	}
	return agg
}
