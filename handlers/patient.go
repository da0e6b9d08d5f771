package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/patient"
	"medibook/utils"
)

// PatientHandler exposes patient management over HTTP.
type PatientHandler struct {
	Service patient.PatientService
}

func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Error("Invalid patient payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to register patient", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient registered", "patient": created})
}

func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Patient not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) GetPatientByPhoneHandler(c *gin.Context) {
	p, err := h.Service.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Patient not found", c.Param("phone"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	patients, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list patients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil || len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty update payload"})
		return
	}
	delete(update, "id")

	if err := h.Service.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Patient not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient updated"})
}

func (h *PatientHandler) DeletePatientHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Patient not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}
