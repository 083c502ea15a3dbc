package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
