package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

const defaultSearchTopK = 5

type PackagesController struct {
	matcherService services.MatcherServiceInterface
	indexService   services.IndexServiceInterface
}

func NewPackagesController(
	matcherService services.MatcherServiceInterface,
	indexService services.IndexServiceInterface,
) *PackagesController {
	return &PackagesController{
		matcherService: matcherService,
		indexService:   indexService,
	}
}

// FindPackages godoc
// @Summary Rank packages against collected trip preferences
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body request_models.FindPackagesRequest true "Trip preferences, destinations required"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /find-packages [post]
func (p *PackagesController) FindPackages(c *gin.Context) {
	var req request_models.FindPackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	matches, err := p.matcherService.FindMatches(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrNoDestinations) || errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one destination is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "package matching failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"packages": matches,
	})
}

// SemanticSearch godoc
// @Summary Search the package vector index
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body request_models.SemanticSearchRequest true "Query text with optional metadata filter"
// @Success 200 {object} map[string]interface{}
// @Router /semantic-search [post]
func (p *PackagesController) SemanticSearch(c *gin.Context) {
	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if req.TopK <= 0 {
		req.TopK = defaultSearchTopK
	}

	hits, err := p.indexService.Search(c.Request.Context(), req.Query, req.TopK, req.Filter)
	if err != nil {
		if errors.Is(err, utils.ErrIndexNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "vector index is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "semantic search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   req.Query,
		"count":   len(hits),
		"results": hits,
	})
}
