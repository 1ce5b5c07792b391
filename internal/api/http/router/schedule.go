package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	h *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/schedule", authRequired)

	entries := group.Group("/entries")
	entries.Get("/", requirePerm(authorize.ResourceScheduleEntry, authorize.ActionList), h.ListEntries)
	entries.Post("/", requirePerm(authorize.ResourceScheduleEntry, authorize.ActionCreate), h.CreateEntry)
	entries.Patch("/:id", requirePerm(authorize.ResourceScheduleEntry, authorize.ActionUpdate), h.UpdateEntry)
	entries.Delete("/:id", requirePerm(authorize.ResourceScheduleEntry, authorize.ActionDelete), h.DeleteEntry)

	blocked := group.Group("/blocked-dates")
	blocked.Get("/", requirePerm(authorize.ResourceBlockedDate, authorize.ActionList), h.ListBlockedDates)
	blocked.Post("/", requirePerm(authorize.ResourceBlockedDate, authorize.ActionCreate), h.BlockDate)
	blocked.Delete("/:id", requirePerm(authorize.ResourceBlockedDate, authorize.ActionDelete), h.UnblockDate)
}
