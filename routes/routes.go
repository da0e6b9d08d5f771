package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medibook/handlers"
	"medibook/utils"
)

// RegisterDoctorRoutes registers doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, h *handlers.DoctorHandler) {
	api := r.Group("/api/doctors")
	{
		api.POST("", h.CreateDoctorHandler)
		api.GET("", h.ListDoctorsHandler)
		api.GET("/:id", h.GetDoctorHandler)
		api.PATCH("/:id", h.UpdateDoctorHandler)
		api.DELETE("/:id", h.DeleteDoctorHandler)

		// Schedule configuration.
		api.PUT("/:id/schedule", h.UpdateScheduleHandler)
		api.POST("/:id/blocked-dates", h.AddBlockedDateHandler)
		api.DELETE("/:id/blocked-dates", h.RemoveBlockedDateHandler)
	}
}

// RegisterPatientRoutes registers patient management endpoints.
func RegisterPatientRoutes(r *gin.Engine, h *handlers.PatientHandler) {
	api := r.Group("/api/patients")
	{
		api.POST("", h.RegisterPatientHandler)
		api.GET("", h.ListPatientsHandler)
		api.GET("/:id", h.GetPatientHandler)
		api.GET("/phone/:phone", h.GetPatientByPhoneHandler)
		api.PATCH("/:id", h.UpdatePatientHandler)
		api.DELETE("/:id", h.DeletePatientHandler)
	}
}

// RegisterAppointmentRoutes sets up the endpoints for the booking workflow.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("/availability", h.GetAvailabilityHandler)
		api.POST("", h.BookAppointmentHandler)
		api.GET("", h.ListDayAppointmentsHandler)
		api.GET("/:id", h.GetAppointmentHandler)
		api.PATCH("/:id/cancel", h.CancelAppointmentHandler)
		api.PATCH("/:id/confirm", h.ConfirmAppointmentHandler)
		api.PATCH("/:id/complete", h.CompleteAppointmentHandler)
		api.GET("/doctor/:id", h.ListDoctorAppointmentsHandler)
		api.GET("/patient/:id", h.ListPatientAppointmentsHandler)
	}
}

// RegisterAdmissionRoutes sets up endpoints for the reception desk.
func RegisterAdmissionRoutes(r *gin.Engine, h *handlers.AdmissionHandler) {
	api := r.Group("/api/admissions")
	{
		api.POST("", h.AdmitPatientHandler)
		api.GET("", h.ListAdmissionsHandler)
		api.GET("/:id", h.GetAdmissionHandler)
		api.PATCH("/:id/discharge", h.DischargePatientHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, doctorH *handlers.DoctorHandler, patientH *handlers.PatientHandler, appointmentH *handlers.AppointmentHandler, admissionH *handlers.AdmissionHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, doctorH)
	RegisterPatientRoutes(r, patientH)
	RegisterAppointmentRoutes(r, appointmentH)
	RegisterAdmissionRoutes(r, admissionH)
	RegisterHealthRoute(r)
}
