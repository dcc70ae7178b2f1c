package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"

	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/services"
)

// StatsPage shows the nightly rollups plus live per-status counts over the
// raw evaluation rows.
func (web *WebController) StatsPage(c *gin.Context) {
	stats, err := models.DB.GetEvaluationStats()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch evaluation stats")
		return
	}

	evaluations, err := models.DB.GetEvaluations()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch evaluations")
		return
	}

	byStatus := lo.CountValuesBy(evaluations, func(e models.Evaluation) string {
		return string(e.Status)
	})
	averageScore := 0.0
	if len(evaluations) > 0 {
		averageScore = float64(lo.SumBy(evaluations, func(e models.Evaluation) int { return e.Score })) / float64(len(evaluations))
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Stats":        stats,
		"ByStatus":     byStatus,
		"AverageScore": averageScore,
		"Total":        len(evaluations),
	})
	c.HTML(http.StatusOK, "stats.tmpl", pageContext)
}
