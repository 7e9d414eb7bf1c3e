package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProgressTracker_Defaults(t *testing.T) {
	p := NewProgressTracker(3)
	assert.Equal(t, 3, p.total)
	assert.Equal(t, 0, p.completed)
	assert.GreaterOrEqual(t, p.barWidth, 10)
}

func TestProgressTracker_StepAdvances(t *testing.T) {
	p := &ProgressTracker{total: 2, barWidth: defaultBarWidth}

	p.Step("kaspad")
	assert.Equal(t, 1, p.completed)

	p.Step("aio-dashboard")
	assert.Equal(t, 2, p.completed)
}
