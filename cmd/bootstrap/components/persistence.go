package components

import (
	"eventlink/internal/infra/db"
	"eventlink/internal/infra/readstore"
	"eventlink/internal/infra/uow"
	"eventlink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(queries.CompanyReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		fx.Annotate(
			readstore.NewNetworkingReadStore,
			fx.As(new(queries.NetworkingReadStore)),
		),
	),
)

// Read stores outside a transaction go straight to the pool.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
