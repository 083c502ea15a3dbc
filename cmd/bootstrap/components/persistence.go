package components

import (
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
