package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"careport/handlers"
	"careport/middleware"
	"careport/session"
)

// RegisterAuthRoutes registers login, logout and registration endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/register", hb.RegisterHandler)

		api.Use(middleware.SessionAuth(sessions))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterPatientRoutes registers patient registration and the patient
// dashboard views.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	api := r.Group("/api/patient")
	{
		api.POST("/register", hb.RegisterPatientHandler)

		protected := api.Group("")
		protected.Use(middleware.SessionAuth(sessions))
		protected.GET("/appointments", hb.PatientAppointmentsHandler)
		protected.GET("/appointments/upcoming", hb.UpcomingAppointmentsHandler)
		protected.DELETE("/appointments/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterDoctorRoutes registers the doctor directory and doctor views.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	api := r.Group("/api/doctor")
	{
		api.GET("/all", hb.ListDoctorsHandler)

		protected := api.Group("")
		protected.Use(middleware.SessionAuth(sessions), middleware.RequireRole("DOCTOR", "ADMIN"))
		protected.GET("/dashboard", hb.DoctorDashboardHandler)
		protected.GET("/appointments/:doctorID", hb.DoctorAppointmentsHandler)
		protected.PUT("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterStaffRoutes registers the staff and hospital-module views.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	staff := r.Group("/api/staff")
	{
		staff.Use(middleware.SessionAuth(sessions), middleware.RequireRole("STAFF", "ADMIN"))
		staff.GET("/dashboard", hb.StaffDashboardHandler)
	}

	hospital := r.Group("/api/hospital")
	{
		hospital.POST("/register", hb.RegisterPatientHandler)

		protected := hospital.Group("")
		protected.Use(middleware.SessionAuth(sessions), middleware.RequireRole("STAFF", "ADMIN"))
		protected.GET("/dashboard", hb.HospitalDashboardHandler)
	}
}

// RegisterPaymentRoutes registers the payment views.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.SessionAuth(sessions))
		api.GET("/dashboard", hb.PaymentsDashboardHandler)
		api.GET("/invoices/:id", hb.PatientInvoicesHandler)
		api.POST("/process", hb.ProcessPaymentHandler)
		api.GET("/:id/receipt", hb.PaymentReceiptHandler)
	}
}

// RegisterHealthRoute registers the landing and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "careport",
			"message": "Hospital management gateway. See /api for the service endpoints.",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "careport gateway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb, sessions)
	RegisterPatientRoutes(r, hb, sessions)
	RegisterDoctorRoutes(r, hb, sessions)
	RegisterStaffRoutes(r, hb, sessions)
	RegisterPaymentRoutes(r, hb, sessions)
	RegisterBookingRoutes(r, hb, sessions)
	RegisterHealthRoute(r)
}
