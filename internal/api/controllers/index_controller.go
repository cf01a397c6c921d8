package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type IndexController struct {
	indexService services.IndexServiceInterface
}

func NewIndexController(indexService services.IndexServiceInterface) *IndexController {
	return &IndexController{
		indexService: indexService,
	}
}

// EmbedPackages godoc
// @Summary Re-embed the whole package catalog into the vector index
// @Tags Index
// @Accept json
// @Produce json
// @Param request body request_models.EmbedPackagesRequest false "Set clearExisting to wipe the index first"
// @Success 200 {object} response_models.EmbedPackagesResult
// @Security BearerAuth
// @Router /embed-packages [post]
func (i *IndexController) EmbedPackages(c *gin.Context) {
	var req request_models.EmbedPackagesRequest
	// Body is optional; an empty POST means incremental re-embed.
	_ = c.ShouldBindJSON(&req)

	result, err := i.indexService.EmbedAllPackages(c.Request.Context(), req.ClearExisting)
	if err != nil {
		if errors.Is(err, utils.ErrIndexNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "vector index is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "embedding run failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// IndexStats godoc
// @Summary Current vector index statistics
// @Tags Index
// @Produce json
// @Success 200 {object} response_models.IndexStats
// @Security BearerAuth
// @Router /embed-packages [get]
func (i *IndexController) IndexStats(c *gin.Context) {
	stats, err := i.indexService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read index stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
