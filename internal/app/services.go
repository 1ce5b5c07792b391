package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/auth"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/branch"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/catalog"
	svcclient "github.com/carlosmariath/painel-clinica-sub001/internal/service/client"
	svcfile "github.com/carlosmariath/painel-clinica-sub001/internal/service/file"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/notification"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/scheduling"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/therapist"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/user"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/email"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/lock"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
	s3pkg "github.com/carlosmariath/painel-clinica-sub001/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideClientService,
		ProvideTherapistService,
		ProvideBranchService,
		ProvideCatalogService,
		ProvideSchedulingService,
		ProvideAvailabilityService,
		ProvideAppointmentService,
		ProvideNotificationService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailCli *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailCli, paseto, cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
}

func ProvideClientService(db *repo.Client, cfg *config.Config) (svcclient.Service, error) {
	return svcclient.New(db, cfg)
}

func ProvideTherapistService(db *repo.Client) therapist.Service {
	return therapist.New(db)
}

func ProvideBranchService(db *repo.Client) branch.Service {
	return branch.New(db)
}

func ProvideCatalogService(db *repo.Client, cache *availability.Cache) catalog.Service {
	return catalog.New(db, cache)
}

func ProvideSchedulingService(db *repo.Client, cache *availability.Cache) scheduling.Service {
	return scheduling.New(db, cache)
}

func ProvideAvailabilityService(db *repo.Client, cache *availability.Cache) availability.Service {
	return availability.New(db, cache)
}

func ProvideAppointmentService(
	db *repo.Client,
	locks *lock.Keyed,
	cache *availability.Cache,
	nc *nats.Conn,
) appointment.Service {
	return appointment.New(db, locks, cache, nc)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideFileService(db *repo.Client, s3 *s3pkg.Client) svcfile.Service {
	return svcfile.New(db, s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
