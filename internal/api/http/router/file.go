package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerFileRoutes(
	api fiber.Router,
	h *handler.FileHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/attachments", authRequired)

	group.Get("/", requirePerm(authorize.ResourceAttachment, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceAttachment, authorize.ActionCreate), h.Upload)
	group.Get("/:id/download", requirePerm(authorize.ResourceAttachment, authorize.ActionRead), h.Download)
	group.Delete("/:id", requirePerm(authorize.ResourceAttachment, authorize.ActionDelete), h.Delete)
}
