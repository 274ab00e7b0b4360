package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/models"
	"github.com/ifrashafqat/job-portal/internal/services"
)

// ApplicationHandler exposes the intake pipeline over HTTP.
type ApplicationHandler struct {
	Service    *services.ApplicationService
	Logger     *zap.Logger
	Production bool
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(svc *services.ApplicationService, logger *zap.Logger, production bool) *ApplicationHandler {
	return &ApplicationHandler{
		Service:    svc,
		Logger:     logger,
		Production: production,
	}
}

// Create is the POST /api/applications endpoint
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.APIResponse{
			Success: false,
			Error:   "Invalid JSON format: " + err.Error(),
		})
		return
	}

	app, tier, fieldErrs, err := h.Service.Submit(c.Request.Context(), &req)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, dtos.APIResponse{
			Success: false,
			Error:   "Validation failed",
			Details: fieldErrs,
		})
		return
	}
	if err != nil {
		h.Logger.Error("failed to submit application", zap.Error(err))
		resp := dtos.APIResponse{Success: false, Error: "Failed to submit application"}
		if !h.Production {
			resp.Error = "Failed to submit application: " + err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusCreated, dtos.APIResponse{
		Success: true,
		Message: "Application submitted successfully!",
		Data:    app,
		Source:  string(tier),
	})
}

// List is the GET /api/applications endpoint. It never errors the UI: on
// backend unavailability it answers 200 with an empty, degraded listing.
func (h *ApplicationHandler) List(c *gin.Context) {
	res := h.Service.List(c.Request.Context())

	apps := res.Applications
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, dtos.APIResponse{
		Success:  true,
		Data:     apps,
		Source:   string(res.Source),
		Degraded: res.Degraded,
	})
}

// UpdateStatus is the PATCH /api/applications/:id/status endpoint
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.APIResponse{
			Success: false,
			Error:   "Invalid JSON format: " + err.Error(),
		})
		return
	}

	app, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, dtos.APIResponse{
				Success: false,
				Error:   "Invalid status: must be one of Pending, Reviewed, Accepted, Rejected",
			})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, dtos.APIResponse{
				Success: false,
				Error:   "Application not found",
			})
		default:
			h.Logger.Error("failed to update status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dtos.APIResponse{
				Success: false,
				Error:   "Failed to update status",
			})
		}
		return
	}

	c.JSON(http.StatusOK, dtos.APIResponse{Success: true, Data: app})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
