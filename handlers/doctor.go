// File: handlers/doctor.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careport/models"
)

// ListDoctorsHandler serves the public doctor directory.
func (hb *HandlerBundle) ListDoctorsHandler(c *gin.Context) {
	doctors, err := hb.API.ListDoctors(c.Request.Context())
	if err != nil {
		getLogger().Warn("failed to fetch doctors", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DoctorDashboardHandler proxies the doctor dashboard payload.
func (hb *HandlerBundle) DoctorDashboardHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	payload, err := hb.API.DoctorDashboard(c.Request.Context(), sess.Token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// DoctorAppointmentsHandler renders a doctor's schedule for one day.
func (hb *HandlerBundle) DoctorAppointmentsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	doctorID, err := strconv.ParseInt(c.Param("doctorID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A date is required"})
		return
	}

	views, err := hb.Appointments.DoctorDay(c.Request.Context(), sess.Token, doctorID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// UpdateAppointmentStatusHandler requests a server-side status transition.
func (hb *HandlerBundle) UpdateAppointmentStatusHandler(c *gin.Context) {
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
	status := models.AppointmentStatus(c.Query("status"))

	appt, err := hb.Appointments.UpdateStatus(c.Request.Context(), sess.Token, appointmentID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAppointmentView(*appt))
}
