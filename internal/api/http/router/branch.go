package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerBranchRoutes(
	api fiber.Router,
	h *handler.BranchHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/branches", authRequired)

	group.Get("/", requirePerm(authorize.ResourceBranch, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceBranch, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceBranch, authorize.ActionRead), h.GetByID)
	group.Patch("/:id", requirePerm(authorize.ResourceBranch, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceBranch, authorize.ActionDelete), h.Delete)
}
