package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/audioskills/skillboard/models"
)

func TestComputeRollups(t *testing.T) {
	evaluations := []models.Evaluation{
		{JobProfileID: 1, Score: 80},
		{JobProfileID: 1, Score: 60},
		{JobProfileID: 2, Score: 90},
	}

	rollups := ComputeRollups(evaluations)
	assert.Len(t, rollups, 2)

	byProfile := map[uint]Rollup{}
	for _, r := range rollups {
		byProfile[r.JobProfileID] = r
	}

	assert.Equal(t, 2, byProfile[1].Count)
	assert.Equal(t, 70.0, byProfile[1].AverageScore)
	assert.Equal(t, 1, byProfile[2].Count)
	assert.Equal(t, 90.0, byProfile[2].AverageScore)
}

func TestComputeRollupsEmpty(t *testing.T) {
	assert.Empty(t, ComputeRollups(nil))
}
