package routes

import (
	"github.com/gin-gonic/gin"

	"careport/handlers"
	"careport/middleware"
	"careport/session"
)

// RegisterBookingRoutes registers the endpoints for the appointment booking
// workflow. Every step runs behind the login session; submission uses the
// stored backend credential.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.SessionAuth(sessions))
		booking.POST("/flow", hb.StartBookingFlowHandler)
		booking.GET("/flow/:flowID", hb.GetBookingFlowHandler)
		booking.PUT("/flow/:flowID/doctor", hb.ChooseDoctorHandler)
		booking.PUT("/flow/:flowID/date", hb.ChooseDateHandler)
		booking.PUT("/flow/:flowID/slot", hb.ChooseSlotHandler)
		booking.POST("/flow/:flowID/submit", hb.SubmitBookingHandler)
		booking.DELETE("/flow/:flowID", hb.AbandonBookingFlowHandler)
	}
}
