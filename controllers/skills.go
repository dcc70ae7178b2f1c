package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/maps"

	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/services"
)

func (web *WebController) JobProfilesPage(c *gin.Context) {
	jobProfiles, err := models.DB.GetJobProfiles()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch job profiles")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"JobProfiles": jobProfiles,
	})
	c.HTML(http.StatusOK, "job_profiles.tmpl", pageContext)
}

func (web *WebController) JobProfileDetailsPage(c *gin.Context) {
	jobProfileId64, err := strconv.ParseUint(c.Param("jobprofileid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse job profile id")
		return
	}

	jobProfile, err := models.DB.GetJobProfileById(uint(jobProfileId64))
	if err != nil || jobProfile == nil {
		c.String(http.StatusForbidden, "Failed to find job profile")
		return
	}

	qualifiers, err := models.DB.GetQualifiers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch qualifiers")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"JobProfile": jobProfile,
		"Qualifiers": qualifiers,
	})
	c.HTML(http.StatusOK, "job_profile_details.tmpl", pageContext)
}

func (web *WebController) AddJobProfilePage(c *gin.Context) {
	if c.Request.Method == "GET" {
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "job_profile_add.tmpl", pageContext)
		return
	}

	name := c.PostForm("name")
	description := c.PostForm("description")
	if name == "" {
		services.AddWarning(c, "Job profile name can't be empty")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "job_profile_add.tmpl", pageContext)
		return
	}

	if _, err := models.DB.CreateJobProfile(name, description); err != nil {
		slog.Error("failed to create a job profile", "error", err)
		services.AddError(c, "Failed to create a job profile")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "job_profile_add.tmpl", pageContext)
		return
	}

	services.AddMessage(c, "Job profile has been created")
	c.Redirect(http.StatusFound, "/skill-master/job-profiles")
}

// AttachQualifierPage links an existing qualifier to a job profile.
func (web *WebController) AttachQualifierPage(c *gin.Context) {
	jobProfileId64, err := strconv.ParseUint(c.Param("jobprofileid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse job profile id")
		return
	}
	qualifierId64, err := strconv.ParseUint(c.PostForm("qualifierid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse qualifier id")
		return
	}

	jobProfile, err := models.DB.GetJobProfileById(uint(jobProfileId64))
	if err != nil || jobProfile == nil {
		c.String(http.StatusForbidden, "Failed to find job profile")
		return
	}

	var qualifier models.Qualifier
	if err := models.DB.GormDB.Take(&qualifier, uint(qualifierId64)).Error; err != nil {
		c.String(http.StatusForbidden, "Failed to find qualifier")
		return
	}

	if err := models.DB.AttachQualifier(jobProfile, &qualifier); err != nil {
		slog.Error("failed to attach qualifier", "jobProfileId", jobProfile.ID, "qualifierId", qualifier.ID, "error", err)
		services.AddError(c, "Failed to attach qualifier")
	} else {
		services.AddMessage(c, "Qualifier has been attached")
	}
	c.Redirect(http.StatusFound, "/skill-master/job-profiles/"+c.Param("jobprofileid"))
}

func (web *WebController) QualifiersPage(c *gin.Context) {
	qualifiers, err := models.DB.GetQualifiers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch qualifiers")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Qualifiers": qualifiers,
	})
	c.HTML(http.StatusOK, "qualifiers.tmpl", pageContext)
}

func (web *WebController) AddQualifierPage(c *gin.Context) {
	if c.Request.Method == "GET" {
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "qualifier_add.tmpl", pageContext)
		return
	}

	name := c.PostForm("name")
	category := c.PostForm("category")
	maxLevel, err := strconv.Atoi(c.DefaultPostForm("maxlevel", "5"))
	if err != nil || maxLevel < 1 {
		services.AddWarning(c, "Max level must be a positive number")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "qualifier_add.tmpl", pageContext)
		return
	}
	if name == "" {
		services.AddWarning(c, "Qualifier name can't be empty")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "qualifier_add.tmpl", pageContext)
		return
	}

	if _, err := models.DB.CreateQualifier(name, category, maxLevel); err != nil {
		slog.Error("failed to create a qualifier", "error", err)
		services.AddError(c, "Failed to create a qualifier")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "qualifier_add.tmpl", pageContext)
		return
	}

	services.AddMessage(c, "Qualifier has been created")
	c.Redirect(http.StatusFound, "/skill-master/qualifiers")
}
