package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
