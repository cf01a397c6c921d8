// cmd/fx/admin_fx/init.go
package admin_fx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAdminController)
