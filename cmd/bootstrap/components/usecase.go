package components

import (
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewRoomCommands,
		commands.NewUserCommands,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
	),
)
