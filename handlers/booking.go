// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careport/models"
	"careport/services/booking"
)

// StartBookingFlowHandler fetches the doctor list and opens a new booking
// flow for the appointment booking view.
func (hb *HandlerBundle) StartBookingFlowHandler(c *gin.Context) {
	flow, err := hb.Flow.StartFlow(c.Request.Context())
	if err != nil {
		getLogger().Error("failed to start booking flow", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// GetBookingFlowHandler returns the current flow state for re-rendering.
func (hb *HandlerBundle) GetBookingFlowHandler(c *gin.Context) {
	flow, err := hb.Flow.GetFlow(c.Request.Context(), c.Param("flowID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ChooseDoctorHandler records the doctor selection.
func (hb *HandlerBundle) ChooseDoctorHandler(c *gin.Context) {
	var input struct {
		DoctorID int64 `json:"doctorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	flow, err := hb.Flow.ChooseDoctor(c.Request.Context(), c.Param("flowID"), input.DoctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ChooseDateHandler records the date selection and runs the slot query.
func (hb *HandlerBundle) ChooseDateHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	flow, err := hb.Flow.ChooseDate(c.Request.Context(), c.Param("flowID"), input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ChooseSlotHandler records the slot selection.
func (hb *HandlerBundle) ChooseSlotHandler(c *gin.Context) {
	var input models.TimeSlot
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	flow, err := hb.Flow.ChooseSlot(c.Request.Context(), c.Param("flowID"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// SubmitBookingHandler validates the draft and submits it with the caller's
// backend credential.
func (hb *HandlerBundle) SubmitBookingHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var input struct {
		ReasonForVisit string `json:"reasonForVisit"`
		Notes          string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req := booking.SubmitRequest{ReasonForVisit: input.ReasonForVisit, Notes: input.Notes}
	flow, err := hb.Flow.Submit(c.Request.Context(), c.Param("flowID"), sess.Token, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// AbandonBookingFlowHandler discards an in-progress flow.
func (hb *HandlerBundle) AbandonBookingFlowHandler(c *gin.Context) {
	if err := hb.Flow.AbandonFlow(c.Request.Context(), c.Param("flowID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking flow abandoned"})
}
