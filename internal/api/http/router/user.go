package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/users", authRequired)

	group.Get("/me", h.Me)

	group.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	group.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)
}
