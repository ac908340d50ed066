package components

import (
	"eventlink/internal/usecase"
	"eventlink/internal/usecase/commands"
	"eventlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCompanyCommands,
		commands.NewEventCommands,
		commands.NewRegistrationCommands,
		commands.NewProfileCommands,
		commands.NewNetworkingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCompanyQueries,
		queries.NewEventQueries,
		queries.NewProfileQueries,
		queries.NewNetworkingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
