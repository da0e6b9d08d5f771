package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/admission"
	"medibook/utils"
)

// AdmissionHandler exposes the reception-desk admission workflow over HTTP.
type AdmissionHandler struct {
	Service admission.AdmissionService
}

func NewAdmissionHandler(svc admission.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{Service: svc}
}

func (h *AdmissionHandler) AdmitPatientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AdmitPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid admission payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	adm, err := h.Service.Admit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Patient or doctor not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to admit patient", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient admitted", "admission": adm})
}

func (h *AdmissionHandler) DischargePatientHandler(c *gin.Context) {
	if err := h.Service.Discharge(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Active admission not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to discharge patient", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient discharged"})
}

func (h *AdmissionHandler) GetAdmissionHandler(c *gin.Context) {
	adm, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Admission not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch admission", err.Error())
		return
	}
	c.JSON(http.StatusOK, adm)
}

func (h *AdmissionHandler) ListAdmissionsHandler(c *gin.Context) {
	admissions, err := h.Service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list admissions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admissions": admissions})
}
