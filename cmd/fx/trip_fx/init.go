// cmd/fx/trip_fx/init.go
package trip_fx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
	"tripscout/internal/repositories"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

var Module = fx.Provide(
	services.NewExtractorService,
	ProvideAgentService,
	services.NewMatcherService,
	services.NewChatService,
	services.NewConversationService,
	controllers.NewExtractController,
	controllers.NewChatController,
	controllers.NewPackagesController,
	controllers.NewConversationController)

// ProvideAgentService narrows the destination repository to the catalog view
// the classifier needs.
func ProvideAgentService(
	completion utils.CompletionClientInterface,
	destinationRepo repositories.DestinationRepository,
) services.AgentServiceInterface {
	return services.NewAgentService(completion, destinationRepo)
}
