package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	h *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/availability", authRequired)

	group.Get("/", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), h.Compute)
	group.Get("/aggregate", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), h.Aggregate)
}
