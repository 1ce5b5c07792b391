package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerTherapistRoutes(
	api fiber.Router,
	h *handler.TherapistHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/therapists", authRequired)

	group.Get("/", requirePerm(authorize.ResourceTherapist, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceTherapist, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceTherapist, authorize.ActionRead), h.GetByID)
	group.Patch("/:id", requirePerm(authorize.ResourceTherapist, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceTherapist, authorize.ActionDelete), h.Delete)
}
