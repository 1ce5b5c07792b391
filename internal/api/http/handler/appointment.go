package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/appointment"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrClientNotFound),
		errors.Is(err, appointment.ErrTherapistNotFound),
		errors.Is(err, appointment.ErrBranchNotFound),
		errors.Is(err, appointment.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrConflict),
		errors.Is(err, appointment.ErrTherapistInactive),
		errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTime),
		errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		TherapistID string `query:"therapist_id"`
		ClientID    string `query:"client_id"`
		BranchID    string `query:"branch_id"`
		Status      string `query:"status"`
		From        string `query:"from"` // YYYY-MM-DD
		To          string `query:"to"`
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if q.BranchID != "" {
		id, err := uuid.Parse(q.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch_id")
		}
		req.BranchID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := interval.ParseDate(q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := interval.ParseDate(q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		ClientID    string  `json:"client_id"`
		TherapistID string  `json:"therapist_id"`
		BranchID    string  `json:"branch_id"`
		ServiceID   string  `json:"service_id"`
		Date        string  `json:"date"` // YYYY-MM-DD
		StartMinute int     `json:"start_minute"`
		Status      string  `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}
	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	branchID, err := uuid.Parse(body.BranchID)
	if err != nil {
		return badRequest(c, "invalid branch_id")
	}
	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}
	date, err := interval.ParseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Book(c.Context(), appointment.BookRequest{
		ClientID:    clientID,
		TherapistID: therapistID,
		BranchID:    branchID,
		ServiceID:   serviceID,
		Date:        date,
		StartMinute: body.StartMinute,
		Status:      body.Status,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// POST /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date        string `json:"date"`
		StartMinute int    `json:"start_minute"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	date, err := interval.ParseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Reschedule(c.Context(), apptID, appointment.RescheduleRequest{
		Date:        date,
		StartMinute: body.StartMinute,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().Body(&body)

	if err := h.svc.Cancel(c.Context(), apptID, appointment.CancelRequest{Reason: body.Reason}); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Status == "" {
		return badRequest(c, "status is required")
	}

	appt, err := h.svc.UpdateStatus(c.Context(), apptID, body.Status)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
