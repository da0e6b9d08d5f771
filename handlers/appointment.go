package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/appointment"
	"medibook/utils"
)

// AppointmentHandler exposes the booking workflow over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// GetAvailabilityHandler returns the bookable slots for a doctor on a date.
func (h *AppointmentHandler) GetAvailabilityHandler(c *gin.Context) {
	doctorID := c.Query("doctorId")
	date := c.Query("date")
	if doctorID == "" || !validDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", "doctorId and date (YYYY-MM-DD) are required")
		return
	}

	availability, err := h.Service.GetAvailability(c.Request.Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", doctorID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, availability)
}

// BookAppointmentHandler books a slot for a patient.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !validDate(req.Date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", "date must be YYYY-MM-DD")
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		var bookingErr *appointment.BookingError
		switch {
		case errors.As(err, &bookingErr):
			status := http.StatusConflict
			if bookingErr.Code == appointment.CodeSlotInPast || bookingErr.Code == appointment.CodeSlotNotOffered {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{"error": bookingErr.Message, "code": bookingErr.Code})
		case errors.Is(err, mongo.ErrNoDocuments):
			utils.JSONError(c, http.StatusNotFound, "Doctor or patient not found", err.Error())
		default:
			logger.Error("Failed to book appointment", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to book appointment", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) statusTransition(c *gin.Context, action string, fn func(c *gin.Context, id string) error) {
	id := c.Param("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing appointment ID in path", "")
		return
	}

	if err := fn(c, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Appointment not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+action+" appointment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + action + "ed"})
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	h.statusTransition(c, "cancel", func(c *gin.Context, id string) error {
		return h.Service.Cancel(c.Request.Context(), id)
	})
}

func (h *AppointmentHandler) ConfirmAppointmentHandler(c *gin.Context) {
	h.statusTransition(c, "confirm", func(c *gin.Context, id string) error {
		return h.Service.Confirm(c.Request.Context(), id)
	})
}

func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	h.statusTransition(c, "complete", func(c *gin.Context, id string) error {
		return h.Service.Complete(c.Request.Context(), id)
	})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListDoctorAppointmentsHandler lists a doctor's appointments for a date.
func (h *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Query("date")
	if !validDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", "date (YYYY-MM-DD) is required")
		return
	}

	appts, err := h.Service.ListForDoctor(c.Request.Context(), doctorID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListDayAppointmentsHandler lists all appointments for a date, for the
// reception desk dashboard.
func (h *AppointmentHandler) ListDayAppointmentsHandler(c *gin.Context) {
	date := c.Query("date")
	if !validDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", "date (YYYY-MM-DD) is required")
		return
	}

	appts, err := h.Service.ListForDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
