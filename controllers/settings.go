package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/maps"

	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/services"
)

// BrandingPage lets admins edit the single branding row seeded at startup.
func (web *WebController) BrandingPage(c *gin.Context) {
	branding, err := models.DB.GetBrandingSetting()
	if err != nil || branding == nil {
		c.String(http.StatusInternalServerError, "Failed to fetch branding settings")
		return
	}

	if c.Request.Method == "GET" {
		pageContext := services.GetMessages(c)
		maps.Copy(pageContext, gin.H{
			"Branding": branding,
		})
		c.HTML(http.StatusOK, "branding.tmpl", pageContext)
		return
	}

	organisationName := c.PostForm("organisation_name")
	if organisationName == "" {
		services.AddWarning(c, "Organisation name can't be empty")
		pageContext := services.GetMessages(c)
		maps.Copy(pageContext, gin.H{
			"Branding": branding,
		})
		c.HTML(http.StatusOK, "branding.tmpl", pageContext)
		return
	}

	branding.OrganisationName = organisationName
	branding.LogoUrl = c.PostForm("logo_url")
	if color := c.PostForm("primary_color"); color != "" {
		branding.PrimaryColor = color
	}

	if err := models.DB.UpdateBrandingSetting(branding); err != nil {
		slog.Error("failed to update branding", "error", err)
		services.AddError(c, "Failed to update branding")
	} else {
		services.AddMessage(c, "Branding has been updated successfully")
	}
	c.Redirect(http.StatusFound, "/admin/settings/branding")
}
