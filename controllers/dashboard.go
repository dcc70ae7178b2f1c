package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/audioskills/skillboard/middleware"
	"github.com/audioskills/skillboard/policy"
)

// DashboardDispatch renders nothing. It exists so one stable home URL can
// send every role to its own subtree; the gate in front of it has already
// resolved the session.
func DashboardDispatch(c *gin.Context) {
	role := c.MustGet(middleware.ROLE_KEY).(policy.Role)
	c.Redirect(http.StatusFound, policy.DashboardPath(role))
}
