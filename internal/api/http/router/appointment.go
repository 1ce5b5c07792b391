package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/api/http/handler"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.Book)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.GetByID)
	a.Post("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Reschedule)
	a.Post("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), h.Cancel)
	a.Patch("/status", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.UpdateStatus)
	a.Delete("/", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), h.Delete)
}
