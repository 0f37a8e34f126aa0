package components

import (
	"turfbook/internal/infra/db"
	"turfbook/internal/infra/notify"
	"turfbook/internal/infra/proofstore"
	"turfbook/internal/infra/readstore"
	"turfbook/internal/infra/uow"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewGroundReadStore,
			fx.As(new(queries.GroundViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewChatReadStore,
			fx.As(new(queries.ChatViewRepo)),
		),
		fx.Annotate(
			NewProofStore,
			fx.As(new(commands.ProofStore)),
		),
		fx.Annotate(
			notify.NewRedisSink,
			fx.As(new(shared.NotificationSink)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewProofStore(cfg config.Config) (*proofstore.LocalStore, error) {
	return proofstore.NewLocalStore(cfg.Media)
}
