package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/maps"

	"github.com/audioskills/skillboard/middleware"
	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/policy"
	"github.com/audioskills/skillboard/services"
)

func (web *WebController) EvaluationsPage(c *gin.Context) {
	evaluations, err := models.DB.GetEvaluations()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch evaluations")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Evaluations": evaluations,
	})
	c.HTML(http.StatusOK, "evaluations.tmpl", pageContext)
}

// EvaluationsExport returns the evaluation list as JSON for reporting tools.
func (web *WebController) EvaluationsExport(c *gin.Context) {
	evaluations, err := models.DB.GetEvaluations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evaluations"})
		return
	}

	marshalledEvaluations := make([]interface{}, 0, len(evaluations))
	for i := range evaluations {
		marshalledEvaluations = append(marshalledEvaluations, evaluations[i].MapToJsonStruct())
	}
	c.JSON(http.StatusOK, gin.H{"result": marshalledEvaluations})
}

func (web *WebController) AddEvaluationPage(c *gin.Context) {
	if c.Request.Method == "GET" {
		profiles, err := models.DB.GetProfiles()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch profiles")
			return
		}
		jobProfiles, err := models.DB.GetJobProfiles()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch job profiles")
			return
		}
		locations, err := models.DB.GetLocations()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch locations")
			return
		}

		pageContext := services.GetMessages(c)
		maps.Copy(pageContext, gin.H{
			"Profiles":    profiles,
			"JobProfiles": jobProfiles,
			"Locations":   locations,
		})
		c.HTML(http.StatusOK, "evaluation_add.tmpl", pageContext)
		return
	}

	// the evaluator is whoever is signed in; the gate resolved them already
	evaluator := middleware.ResolveSession(c).Profile
	if evaluator == nil {
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	profileId64, err := strconv.ParseUint(c.PostForm("profileid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse profile id")
		return
	}
	jobProfileId64, err := strconv.ParseUint(c.PostForm("jobprofileid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse job profile id")
		return
	}
	locationId64, err := strconv.ParseUint(c.PostForm("locationid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse location id")
		return
	}
	score, err := strconv.Atoi(c.PostForm("score"))
	if err != nil || score < 0 || score > 100 {
		services.AddWarning(c, "Score must be between 0 and 100")
		c.Redirect(http.StatusFound, "/evaluator/evaluations/add")
		return
	}

	_, err = models.DB.CreateEvaluation(uint(profileId64), evaluator.ID, uint(jobProfileId64), uint(locationId64), score, time.Now())
	if err != nil {
		slog.Error("failed to create an evaluation", "error", err)
		services.AddError(c, "Failed to create an evaluation")
		c.Redirect(http.StatusFound, "/evaluator/evaluations/add")
		return
	}

	services.AddMessage(c, "Evaluation has been recorded")
	c.Redirect(http.StatusFound, "/evaluator/evaluations")
}
