package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhzhou/bikeshare-survey-go/internal/models"
	"github.com/mhzhou/bikeshare-survey-go/internal/service"
	"github.com/mhzhou/bikeshare-survey-go/internal/survey"
	"github.com/mhzhou/bikeshare-survey-go/pkg/response"
)

// SurveyHandler handles HTTP requests for survey-sampling operations
type SurveyHandler struct {
	service *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(service *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{service: service}
}

// GetPopulationSummary handles GET /api/v1/survey/population
func (h *SurveyHandler) GetPopulationSummary(c *gin.Context) {
	summary, err := h.service.GetPopulationSummary()
	if err != nil {
		surveyError(c, "Failed to summarize population", err)
		return
	}
	response.Success(c, summary)
}

// GetStrata handles GET /api/v1/survey/strata
func (h *SurveyHandler) GetStrata(c *gin.Context) {
	strata, err := h.service.GetStrata()
	if err != nil {
		surveyError(c, "Failed to build stratum table", err)
		return
	}
	response.Success(c, strata)
}

// BuildAllocation handles POST /api/v1/survey/allocation
func (h *SurveyHandler) BuildAllocation(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid allocation request", err)
		return
	}

	rows, err := h.service.BuildAllocation(req)
	if err != nil {
		surveyError(c, "Failed to build allocation plan", err)
		return
	}
	response.Success(c, rows)
}

// Estimate handles POST /api/v1/survey/estimate
func (h *SurveyHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid estimate request", err)
		return
	}

	result, err := h.service.Estimate(req)
	if err != nil {
		surveyError(c, "Failed to run estimator", err)
		return
	}
	response.Success(c, result)
}

// CorrectSampleSize handles POST /api/v1/survey/corrected-size
func (h *SurveyHandler) CorrectSampleSize(c *gin.Context) {
	var req models.CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid correction request", err)
		return
	}

	response.Success(c, h.service.CorrectSampleSize(req))
}

// Compare handles POST /api/v1/survey/compare
func (h *SurveyHandler) Compare(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid comparison request", err)
		return
	}

	rows, err := h.service.Compare(req)
	if err != nil {
		surveyError(c, "Failed to run comparison", err)
		return
	}
	response.Success(c, rows)
}

// surveyError maps survey sentinel errors to 400; everything else is a 500
func surveyError(c *gin.Context, message string, err error) {
	if errors.Is(err, survey.ErrConfiguration) ||
		errors.Is(err, survey.ErrInvalidAllocation) ||
		errors.Is(err, survey.ErrInsufficientPopulation) {
		response.Error(c, http.StatusBadRequest, message, err)
		return
	}
	response.Error(c, http.StatusInternalServerError, message, err)
}
