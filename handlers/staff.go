// File: handlers/staff.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaffDashboardHandler proxies the staff dashboard payload.
func (hb *HandlerBundle) StaffDashboardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	payload, err := hb.API.StaffDashboard(c.Request.Context(), sess.Token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// HospitalDashboardHandler serves the hospital-module dashboard. It reuses
// the staff dashboard payload, which carries the hospital-wide figures.
func (hb *HandlerBundle) HospitalDashboardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	payload, err := hb.API.StaffDashboard(c.Request.Context(), sess.Token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
