package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerClientRoutes(
	api fiber.Router,
	h *handler.ClientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/clients", authRequired)

	group.Get("/", requirePerm(authorize.ResourceClient, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceClient, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceClient, authorize.ActionRead), h.GetByID)
	group.Get("/:id/document", requirePerm(authorize.ResourceClient, authorize.ActionRead), h.Document)
	group.Patch("/:id", requirePerm(authorize.ResourceClient, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceClient, authorize.ActionDelete), h.Delete)
}
