package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRecommendations_BigHostGetsEverything(t *testing.T) {
	sys := SystemResources{MemoryGB: 64, CPUCores: 16, DiskGB: 4000}
	recs := TemplateRecommendations(sys, "")

	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.NotEqual(t, "custom-setup", rec.Template.ID, "dynamic templates are not scored")
		assert.Empty(t, rec.Insufficient)
		assert.True(t, rec.Recommended, rec.Template.ID)
	}
}

func TestTemplateRecommendations_SmallHostFlagsInsufficientDimensions(t *testing.T) {
	sys := SystemResources{MemoryGB: 4, CPUCores: 2, DiskGB: 50}
	recs := TemplateRecommendations(sys, "")

	for _, rec := range recs {
		assert.False(t, rec.Recommended, rec.Template.ID)
		assert.NotEmpty(t, rec.Insufficient, rec.Template.ID)
	}
}

func TestTemplateRecommendations_UseCaseLiftsMatchToTop(t *testing.T) {
	sys := SystemResources{MemoryGB: 64, CPUCores: 16, DiskGB: 4000}
	recs := TemplateRecommendations(sys, "mining")

	require.NotEmpty(t, recs)
	assert.Equal(t, "solo-miner", recs[0].Template.ID)
}

func TestTemplateRecommendations_PersonalFavorsBeginnerTemplates(t *testing.T) {
	sys := SystemResources{MemoryGB: 64, CPUCores: 16, DiskGB: 4000}
	recs := TemplateRecommendations(sys, "personal")

	require.NotEmpty(t, recs)
	// quick-start matches the use case and gets the beginner bonus on top.
	assert.Equal(t, "quick-start", recs[0].Template.ID)
}

func TestTemplateRecommendations_SortedByScoreDescending(t *testing.T) {
	sys := SystemResources{MemoryGB: 16, CPUCores: 8, DiskGB: 500}
	recs := TemplateRecommendations(sys, "development")

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}
