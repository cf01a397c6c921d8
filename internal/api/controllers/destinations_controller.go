package controllers

import (
	"github.com/gin-gonic/gin"
	"tripscout/internal/repositories"
	mem "tripscout/pkg/memcache"
	"tripscout/pkg/utils"
)

type DestinationsController struct {
	destinationRepo repositories.DestinationRepository
	slugCache       *mem.DestinationSlugs
}

func NewDestinationsController(
	destinationRepo repositories.DestinationRepository,
	slugCache *mem.DestinationSlugs,
) *DestinationsController {
	return &DestinationsController{
		destinationRepo: destinationRepo,
		slugCache:       slugCache,
	}
}

type destinationView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country"`
}

// List godoc
// @Summary List the destination catalog
// @Tags Destinations
// @Produce json
// @Success 200 {array} controllers.destinationView
// @Router /destinations [get]
func (d *DestinationsController) List(c *gin.Context) {
	destinations, err := d.destinationRepo.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	views := make([]destinationView, 0, len(destinations))
	for _, dest := range destinations {
		slug := dest.Slug
		if cached, ok, err := d.slugCache.Slug(c.Request.Context(), dest.Name); err == nil && ok {
			slug = cached
		}
		views = append(views, destinationView{
			ID:      dest.ID.String(),
			Name:    dest.Name,
			Slug:    slug,
			Country: dest.Country,
		})
	}

	utils.RespondSuccess(c, views, "Destinations fetched successfully")
}

// RefreshSlugs godoc
// @Summary Drop the slug cache after catalog edits
// @Tags Destinations
// @Produce json
// @Security BearerAuth
// @Router /admin/refresh-destinations [post]
func (d *DestinationsController) RefreshSlugs(c *gin.Context) {
	d.slugCache.ForceClear()
	utils.RespondSuccess(c, nil, "Destination slug cache cleared")
}
