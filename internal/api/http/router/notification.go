package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	h *handler.NotificationHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/notifications", authRequired)

	group.Get("/", requireSelf(authorize.ResourceNotification, authorize.ActionList), h.List)
	group.Get("/unread-count", requireSelf(authorize.ResourceNotification, authorize.ActionRead), h.UnreadCount)
	group.Post("/read-all", requireSelf(authorize.ResourceNotification, authorize.ActionUpdate), h.MarkAllRead)
	group.Post("/:id/read", requireSelf(authorize.ResourceNotification, authorize.ActionUpdate), h.MarkRead)
	group.Delete("/:id", requireSelf(authorize.ResourceNotification, authorize.ActionDelete), h.Delete)
}
