package components

import (
	"eventlink/internal/handler"
	"eventlink/internal/handler/api"
	"eventlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCompanyHandler,
		api.NewEventHandler,
		api.NewProfileHandler,
		api.NewPublicHandler,
		api.NewNetworkingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	company *api.CompanyHandler,
	event *api.EventHandler,
	profile *api.ProfileHandler,
	public *api.PublicHandler,
	networking *api.NetworkingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Company:    company,
		Event:      event,
		Profile:    profile,
		Public:     public,
		Networking: networking,
	}
}
