package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	h *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/services", authRequired)

	group.Get("/", requirePerm(authorize.ResourceService, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceService, authorize.ActionRead), h.GetByID)
	group.Patch("/:id", requirePerm(authorize.ResourceService, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceService, authorize.ActionDelete), h.Delete)
}
