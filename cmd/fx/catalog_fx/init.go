// cmd/fx/catalog_fx/init.go
package catalog_fx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
	"tripscout/internal/repositories"
	mem "tripscout/pkg/memcache"
)

var Module = fx.Provide(
	repositories.NewDestinationRepository,
	repositories.NewPackageRepository,
	repositories.NewPackageVectorRepository,
	ProvideSlugCache,
	controllers.NewDestinationsController)

// ProvideSlugCache wires the lazy slug cache to the destination catalog.
func ProvideSlugCache(destinationRepo repositories.DestinationRepository) *mem.DestinationSlugs {
	return mem.NewDestinationSlugs(destinationRepo.SlugMap)
}
