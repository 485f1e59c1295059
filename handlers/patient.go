// File: handlers/patient.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientAppointmentsHandler renders the patient's appointment list with
// status coloring and per-row cancel availability.
func (hb *HandlerBundle) PatientAppointmentsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	views, err := hb.Appointments.PatientList(c.Request.Context(), sess.Token)
	if err != nil {
		getLogger().Warn("failed to fetch appointments", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// UpcomingAppointmentsHandler renders only the still-scheduled appointments.
func (hb *HandlerBundle) UpcomingAppointmentsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	views, err := hb.Appointments.UpcomingList(c.Request.Context(), sess.Token)
	if err != nil {
		getLogger().Warn("failed to fetch upcoming appointments", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// CancelAppointmentHandler cancels one appointment after explicit
// confirmation and responds with the refreshed list.
func (hb *HandlerBundle) CancelAppointmentHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	var input struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	views, err := hb.Appointments.Cancel(c.Request.Context(), sess.Token, appointmentID, input.Confirmed)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Appointment cancelled successfully",
		"appointments": views,
	})
}
