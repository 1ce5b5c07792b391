package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/middleware"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/auth"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/branch"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/catalog"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/client"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/file"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/notification"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/scheduling"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/therapist"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/user"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	AuthSvc         auth.Service
	UserSvc         user.Service
	ClientSvc       client.Service
	TherapistSvc    therapist.Service
	BranchSvc       branch.Service
	CatalogSvc      catalog.Service
	SchedulingSvc   scheduling.Service
	AvailabilitySvc availability.Service
	AppointmentSvc  appointment.Service
	NotificationSvc notification.Service
	FileSvc         file.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	therapistH := handler.NewTherapistHandler(r.p.TherapistSvc)
	branchH := handler.NewBranchHandler(r.p.BranchSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerClientRoutes(api, clientH, authRequired, requirePerm)
	r.registerTherapistRoutes(api, therapistH, authRequired, requirePerm)
	r.registerBranchRoutes(api, branchH, authRequired, requirePerm)
	r.registerCatalogRoutes(api, catalogH, authRequired, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, requirePerm)
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requireSelf)
	r.registerFileRoutes(api, fileH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
