package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat godoc
// @Summary Free-form travel chat
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Prompt plus optional conversation history"
// @Success 200 {object} map[string]string
// @Router /chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	// Chat never errors out toward the client; failures become a fallback
	// message inside the service.
	message := ch.chatService.Chat(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// AnalyzeImage godoc
// @Summary Detect the destination shown in a photo
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeImageRequest true "Base64 image and destination catalog"
// @Success 200 {object} response_models.AnalyzeImageResponse
// @Router /analyze-image [post]
func (ch *ChatController) AnalyzeImage(c *gin.Context) {
	var req request_models.AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageBase64 is required"})
		return
	}

	result, err := ch.chatService.AnalyzeImage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Speak godoc
// @Summary Synthesize speech for a reply
// @Tags Chat
// @Accept json
// @Produce audio/mpeg
// @Param request body request_models.TTSRequest true "Text to speak"
// @Success 200 {string} binary "mpeg audio"
// @Router /tts [post]
func (ch *ChatController) Speak(c *gin.Context) {
	var req request_models.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	audio, err := ch.chatService.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speech synthesis failed"})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
