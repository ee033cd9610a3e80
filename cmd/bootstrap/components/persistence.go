package components

import (
	"hotelhub/internal/infra/db"
	"hotelhub/internal/infra/readstore"
	"hotelhub/internal/infra/uow"
	"hotelhub/internal/infra/weather"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Writes go through the unit of work; its repositories are created
		// per-transaction and never injected directly.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			NewWeatherClient,
			fx.As(new(queries.WeatherProvider)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewWeatherClient(cfg config.Config) *weather.Client {
	return weather.NewClient(cfg.Weather)
}
