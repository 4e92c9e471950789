package components

import (
	"aparthotel-booking/internal/handler"
	"aparthotel-booking/internal/handler/api"
	"aparthotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewApartmentHandler,
		api.NewBookingHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
