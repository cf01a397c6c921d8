package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		conversationService: conversationService,
	}
}

// Start godoc
// @Summary Start a guided trip-planning conversation
// @Tags Conversation
// @Produce json
// @Success 200 {object} response_models.ConversationResponse
// @Router /conversation/start [post]
func (cc *ConversationController) Start(c *gin.Context) {
	resp, err := cc.conversationService.Start(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Conversation started")
}

// Answer godoc
// @Summary Submit the next answer in a conversation
// @Tags Conversation
// @Accept json
// @Produce json
// @Param request body request_models.ConversationAnswerRequest true "Session id, message and optional mode"
// @Success 200 {object} response_models.ConversationResponse
// @Failure 404 {object} utils.APIResponse
// @Router /conversation/answer [post]
func (cc *ConversationController) Answer(c *gin.Context) {
	var req request_models.ConversationAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := cc.conversationService.Answer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Answer processed")
}
