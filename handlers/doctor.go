package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"
)

// DoctorHandler exposes doctor management over HTTP.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Error("Invalid doctor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &doc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create doctor", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Doctor created", "doctor": created})
}

func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	specialty := c.Query("specialty")
	activeOnly := c.Query("active") == "true"

	doctors, err := h.Service.List(c.Request.Context(), specialty, activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil || len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty update payload"})
		return
	}
	// Schedule changes go through the dedicated endpoint so they are validated.
	delete(update, "schedule")
	delete(update, "id")

	if err := h.Service.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor updated"})
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// UpdateScheduleHandler replaces a doctor's schedule configuration.
func (h *DoctorHandler) UpdateScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var schedule models.ScheduleConfig
	if err := c.ShouldBindJSON(&schedule); err != nil {
		logger.Error("Invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateSchedule(c.Request.Context(), c.Param("id"), schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated"})
}

func (h *DoctorHandler) blockedDateFromBody(c *gin.Context) (string, bool) {
	var body struct {
		Date string `json:"date" binding:"required"` // Required field
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return "", false
	}
	return body.Date, true
}

func (h *DoctorHandler) AddBlockedDateHandler(c *gin.Context) {
	date, ok := h.blockedDateFromBody(c)
	if !ok {
		return
	}

	if err := h.Service.AddBlockedDate(c.Request.Context(), c.Param("id"), date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to add blocked date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date added"})
}

func (h *DoctorHandler) RemoveBlockedDateHandler(c *gin.Context) {
	date, ok := h.blockedDateFromBody(c)
	if !ok {
		return
	}

	if err := h.Service.RemoveBlockedDate(c.Request.Context(), c.Param("id"), date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to remove blocked date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date removed"})
}
