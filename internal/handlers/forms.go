package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kpa-platform/form-service/internal/middleware"
	"github.com/kpa-platform/form-service/internal/models"
	"github.com/kpa-platform/form-service/internal/repository"
	"github.com/kpa-platform/form-service/internal/service"
)

// FormHandler handles KPA form HTTP requests.
type FormHandler struct {
	formService service.FormService
}

// NewFormHandler creates a new FormHandler instance.
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// CreateFormRequest represents the create-form request payload.
type CreateFormRequest struct {
	EmployeeID        string   `json:"employee_id" binding:"required"`
	EmployeeName      string   `json:"employee_name" binding:"required"`
	Department        string   `json:"department" binding:"required"`
	Designation       string   `json:"designation" binding:"required"`
	PerformancePeriod string   `json:"performance_period" binding:"required"`
	KPATitle          string   `json:"kpa_title" binding:"required"`
	KPADescription    string   `json:"kpa_description"`
	TargetValue       *float64 `json:"target_value" binding:"required,gt=0"`
	AchievedValue     *float64 `json:"achieved_value" binding:"required,gte=0"`
	Weightage         *float64 `json:"weightage" binding:"required,gte=0"`
	Remarks           *string  `json:"remarks"`
}

// FormResponse represents the single-form response payload.
type FormResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	FormID  string          `json:"form_id,omitempty"`
	Data    *models.KPAForm `json:"data,omitempty"`
}

// FormListResponse represents the list response payload.
type FormListResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       []models.KPAForm `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// ListQuery represents the list query parameters.
type ListQuery struct {
	Page       int    `form:"page,default=1" binding:"gte=1"`
	Limit      int    `form:"limit,default=10" binding:"gte=1"`
	EmployeeID string `form:"employee_id"`
	Department string `form:"department"`
}

// Create stores a new KPA form for the authenticated user. The score is
// computed from target, achieved and weightage at creation time and is never
// recomputed afterwards.
func (h *FormHandler) Create(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	creatorID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid authentication credentials")
		return
	}

	form, err := h.formService.Create(c.Request.Context(), service.FormInput{
		EmployeeID:        req.EmployeeID,
		EmployeeName:      req.EmployeeName,
		Department:        req.Department,
		Designation:       req.Designation,
		PerformancePeriod: req.PerformancePeriod,
		KPATitle:          req.KPATitle,
		KPADescription:    req.KPADescription,
		TargetValue:       *req.TargetValue,
		AchievedValue:     *req.AchievedValue,
		Weightage:         *req.Weightage,
		Remarks:           req.Remarks,
	}, creatorID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Success: false,
				Message: "invalid request",
				Details: map[string]string{"target_value": err.Error()},
			})
			return
		}
		logAndRespondInternal(c, err, "create kpa form failed")
		return
	}

	c.JSON(http.StatusOK, FormResponse{
		Success: true,
		Message: "KPA form created successfully",
		FormID:  form.ID.String(),
		Data:    form,
	})
}

// List returns one page of KPA forms, most recent first, with optional
// filtering by exact employee id and case-insensitive department substring.
// total_count is the size of the filtered set before pagination.
func (h *FormHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	filter := repository.ListFilter{
		EmployeeID: query.EmployeeID,
		Department: query.Department,
	}

	forms, total, err := h.formService.List(c.Request.Context(), filter, query.Page, query.Limit)
	if err != nil {
		logAndRespondInternal(c, err, "list kpa forms failed")
		return
	}

	if forms == nil {
		forms = []models.KPAForm{}
	}

	c.JSON(http.StatusOK, FormListResponse{
		Success:    true,
		Message:    "KPA forms retrieved successfully",
		Data:       forms,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
	})
}

// GetByID returns a single KPA form. An unknown or non-uuid id is reported
// as not found.
func (h *FormHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "KPA form not found")
		return
	}

	form, err := h.formService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "KPA form not found")
			return
		}
		logAndRespondInternal(c, err, "get kpa form failed")
		return
	}

	c.JSON(http.StatusOK, FormResponse{
		Success: true,
		Message: "KPA form retrieved successfully",
		FormID:  form.ID.String(),
		Data:    form,
	})
}
