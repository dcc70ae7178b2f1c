package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/maps"

	"github.com/audioskills/skillboard/config"
	"github.com/audioskills/skillboard/middleware"
	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/policy"
	"github.com/audioskills/skillboard/services"
)

type WebController struct {
	Config *config.Config
}

// HomePage is the generic authenticated landing page. It calls
// ResolveSession again on purpose: the memoizer guarantees the lookups
// behind it ran once for this request, in the gate.
func (web *WebController) HomePage(c *gin.Context) {
	profile := middleware.ResolveSession(c).Profile
	if profile == nil {
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	evaluations, err := models.DB.GetEvaluationsForProfile(profile.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch evaluations")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"DisplayName": c.GetString(middleware.USER_NAME_KEY),
		"Email":       c.GetString(middleware.USER_EMAIL_KEY),
		"Role":        c.MustGet(middleware.ROLE_KEY),
		"Evaluations": evaluations,
	})
	c.HTML(http.StatusOK, "home.tmpl", pageContext)
}

func (web *WebController) ProfilePage(c *gin.Context) {
	profile := middleware.ResolveSession(c).Profile
	if profile == nil {
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Profile":     profile,
		"DisplayName": profile.DisplayName(),
	})
	c.HTML(http.StatusOK, "profile.tmpl", pageContext)
}

func (web *WebController) ProfilesPage(c *gin.Context) {
	profiles, err := models.DB.GetProfiles()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch profiles")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Profiles": profiles,
		"Roles":    policy.Roles,
	})
	c.HTML(http.StatusOK, "profiles.tmpl", pageContext)
}

func (web *WebController) ProfileRoleUpdatePage(c *gin.Context) {
	profileId64, err := strconv.ParseUint(c.Param("profileid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse profile id")
		return
	}

	profile, err := models.DB.GetProfileById(uint(profileId64))
	if err != nil {
		c.String(http.StatusForbidden, "Failed to find profile")
		return
	}

	role := c.PostForm("role")
	if !policy.IsKnown(policy.Role(role)) {
		slog.Warn("rejected unknown role value", "role", role, "profileId", profile.ID)
		services.AddWarning(c, "Unknown role")
		c.Redirect(http.StatusFound, "/admin/profiles")
		return
	}

	if err := models.DB.UpdateProfileRole(profile, role); err != nil {
		slog.Error("failed to update profile role", "profileId", profile.ID, "error", err)
		services.AddError(c, "Failed to update role")
		c.Redirect(http.StatusFound, "/admin/profiles")
		return
	}

	slog.Info("profile role updated", "profileId", profile.ID, "role", role)
	services.AddMessage(c, "Role has been updated successfully")
	c.Redirect(http.StatusFound, "/admin/profiles")
}

func (web *WebController) LocationsPage(c *gin.Context) {
	locations, err := models.DB.GetLocations()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch locations")
		return
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Locations": locations,
	})
	c.HTML(http.StatusOK, "locations.tmpl", pageContext)
}

func (web *WebController) AddLocationPage(c *gin.Context) {
	if c.Request.Method == "GET" {
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "location_add.tmpl", pageContext)
		return
	}

	name := c.PostForm("name")
	city := c.PostForm("city")
	if name == "" {
		services.AddWarning(c, "Location name can't be empty")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "location_add.tmpl", pageContext)
		return
	}

	if _, err := models.DB.CreateLocation(name, city); err != nil {
		slog.Error("failed to create a location", "error", err)
		services.AddError(c, "Failed to create a location")
		pageContext := services.GetMessages(c)
		c.HTML(http.StatusOK, "location_add.tmpl", pageContext)
		return
	}

	services.AddMessage(c, "Location has been created")
	c.Redirect(http.StatusFound, "/admin/locations")
}

func (web *WebController) LocationToggleActivePage(c *gin.Context) {
	locationId64, err := strconv.ParseUint(c.Param("locationid"), 10, 32)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to parse location id")
		return
	}

	location, err := models.DB.GetLocationById(uint(locationId64))
	if err != nil || location == nil {
		c.String(http.StatusForbidden, "Failed to find location")
		return
	}

	location.Active = !location.Active
	if err := models.DB.UpdateLocation(location); err != nil {
		services.AddError(c, "Failed to update location")
	} else {
		services.AddMessage(c, "Location has been updated")
	}
	c.Redirect(http.StatusFound, "/admin/locations")
}
