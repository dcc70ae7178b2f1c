package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/audioskills/skillboard/auth"
	"github.com/audioskills/skillboard/config"
	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/policy"
	"github.com/audioskills/skillboard/services"
	"golang.org/x/exp/maps"
)

// AuthController owns the login surface. Credential verification is
// delegated to the identity provider deployment; the built-in form only
// exchanges a known profile email for a session cookie.
type AuthController struct {
	Provider auth.Provider
}

func (a *AuthController) LoginPage(c *gin.Context) {
	branding, err := models.DB.GetBrandingSetting()
	if err != nil {
		slog.Error("failed to load branding for login page", "error", err)
	}

	pageContext := services.GetMessages(c)
	maps.Copy(pageContext, gin.H{
		"Branding": branding,
	})
	c.HTML(http.StatusOK, "login.tmpl", pageContext)
}

func (a *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		services.AddWarning(c, "Email can't be empty")
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	profile, err := models.DB.GetProfileByEmail(email)
	if err != nil || profile == nil {
		slog.Warn("login attempt for unknown profile", "email", email)
		services.AddError(c, "No account found for this email")
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	jwtProvider, ok := a.Provider.(*auth.JWTProvider)
	if !ok {
		// noop auth mode, the provider already answers every request
		c.Redirect(http.StatusFound, policy.HomePath)
		return
	}

	ttl := time.Duration(config.GetSessionTtlHours()) * time.Hour
	token, err := jwtProvider.IssueToken(&auth.Identity{ID: profile.ExternalId, Email: profile.Email}, ttl)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		services.AddError(c, "Login failed, please try again")
		c.Redirect(http.StatusFound, policy.LoginPath)
		return
	}

	c.SetCookie(auth.SessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)
	slog.Info("session issued", "profileId", profile.ID, "role", profile.Role)
	c.Redirect(http.StatusFound, policy.HomePath)
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, policy.LoginPath)
}
