// cmd/fx/index_fx/init.go
package index_fx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
	"tripscout/internal/services"
)

var Module = fx.Provide(
	services.NewIndexService,
	controllers.NewIndexController)
