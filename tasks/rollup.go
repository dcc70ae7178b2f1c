package main

import (
	"time"

	"github.com/samber/lo"

	"github.com/audioskills/skillboard/models"
)

// Rollup is one day's aggregate for one job profile.
type Rollup struct {
	JobProfileID uint
	Count        int
	AverageScore float64
}

// ComputeRollups aggregates raw evaluation rows per job profile.
func ComputeRollups(evaluations []models.Evaluation) []Rollup {
	grouped := lo.GroupBy(evaluations, func(e models.Evaluation) uint {
		return e.JobProfileID
	})

	rollups := make([]Rollup, 0, len(grouped))
	for jobProfileId, group := range grouped {
		total := lo.SumBy(group, func(e models.Evaluation) int { return e.Score })
		rollups = append(rollups, Rollup{
			JobProfileID: jobProfileId,
			Count:        len(group),
			AverageScore: float64(total) / float64(len(group)),
		})
	}
	return rollups
}

// RunNightlyRollup recomputes and stores the stats rows for one day.
func RunNightlyRollup(db *models.Database, day time.Time) error {
	from := day.Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	evaluations, err := db.GetEvaluationsBetween(from, to)
	if err != nil {
		return err
	}

	for _, rollup := range ComputeRollups(evaluations) {
		if _, err := db.UpsertEvaluationStat(rollup.JobProfileID, from, rollup.Count, rollup.AverageScore); err != nil {
			return err
		}
	}
	return nil
}
