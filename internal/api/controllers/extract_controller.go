package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/services"
)

type ExtractController struct {
	extractorService services.ExtractorServiceInterface
}

func NewExtractController(extractorService services.ExtractorServiceInterface) *ExtractController {
	return &ExtractController{
		extractorService: extractorService,
	}
}

// Extract godoc
// @Summary Extract trip fields from a user message
// @Description Parse one conversational answer into structured trip fields for the current wizard question
// @Tags Extract
// @Accept json
// @Produce json
// @Param request body request_models.ExtractRequest true "User input and conversation context"
// @Success 200 {object} response_models.ExtractionResult
// @Failure 400 {object} map[string]string
// @Router /extract [post]
func (e *ExtractController) Extract(c *gin.Context) {
	var req request_models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.UserInput == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userInput is required"})
		return
	}

	if req.CurrentQuestion == "" {
		req.CurrentQuestion = services.QuestionGeneral
	}

	result, err := e.extractorService.Extract(c.Request.Context(), req)
	if err != nil {
		// Model unreachable. The body still carries a usable degraded result
		// shape so clients have one code path.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "extraction failed",
			"confidence": response_models.ConfidenceLow,
			"understood": false,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
