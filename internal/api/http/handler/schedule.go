package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/scheduling"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrEntryNotFound),
		errors.Is(err, scheduling.ErrBlockNotFound),
		errors.Is(err, scheduling.ErrTherapistNotFound),
		errors.Is(err, scheduling.ErrBranchNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange),
		errors.Is(err, scheduling.ErrInvalidDayOfWeek),
		errors.Is(err, scheduling.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrDateAlreadyBlocked):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /schedule/entries
func (h *ScheduleHandler) ListEntries(c fiber.Ctx) error {
	var q struct {
		TherapistID string `query:"therapist_id"`
		BranchID    string `query:"branch_id"`
		DayOfWeek   *int8  `query:"day_of_week"`
	}
	_ = c.Bind().Query(&q)

	req := scheduling.ListEntriesRequest{DayOfWeek: q.DayOfWeek}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}
	if q.BranchID != "" {
		id, err := uuid.Parse(q.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch_id")
		}
		req.BranchID = &id
	}

	entries, err := h.svc.ListEntries(c.Context(), req)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, entries)
}

// POST /schedule/entries
func (h *ScheduleHandler) CreateEntry(c fiber.Ctx) error {
	var body struct {
		TherapistID string `json:"therapist_id"`
		BranchID    string `json:"branch_id"`
		DayOfWeek   int8   `json:"day_of_week"`
		StartMinute int    `json:"start_minute"`
		EndMinute   int    `json:"end_minute"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	branchID, err := uuid.Parse(body.BranchID)
	if err != nil {
		return badRequest(c, "invalid branch_id")
	}

	entry, err := h.svc.CreateEntry(c.Context(), scheduling.CreateEntryRequest{
		TherapistID: therapistID,
		BranchID:    branchID,
		DayOfWeek:   body.DayOfWeek,
		StartMinute: body.StartMinute,
		EndMinute:   body.EndMinute,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, entry)
}

// PATCH /schedule/entries/:id
func (h *ScheduleHandler) UpdateEntry(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	var body struct {
		DayOfWeek   *int8 `json:"day_of_week"`
		StartMinute *int  `json:"start_minute"`
		EndMinute   *int  `json:"end_minute"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	entry, err := h.svc.UpdateEntry(c.Context(), id, scheduling.UpdateEntryRequest{
		DayOfWeek:   body.DayOfWeek,
		StartMinute: body.StartMinute,
		EndMinute:   body.EndMinute,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, entry)
}

// DELETE /schedule/entries/:id
func (h *ScheduleHandler) DeleteEntry(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.svc.DeleteEntry(c.Context(), id); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// GET /schedule/blocked-dates
func (h *ScheduleHandler) ListBlockedDates(c fiber.Ctx) error {
	var q struct {
		TherapistID string `query:"therapist_id"`
		From        string `query:"from"` // YYYY-MM-DD
		To          string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	therapistID, err := uuid.Parse(q.TherapistID)
	if err != nil {
		return badRequest(c, "therapist_id is required")
	}
	from, err := interval.ParseDate(q.From)
	if err != nil {
		return badRequest(c, "invalid from date")
	}
	to, err := interval.ParseDate(q.To)
	if err != nil {
		return badRequest(c, "invalid to date")
	}

	blocks, err := h.svc.ListBlockedDates(c.Context(), therapistID, from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, blocks)
}

// POST /schedule/blocked-dates
func (h *ScheduleHandler) BlockDate(c fiber.Ctx) error {
	var body struct {
		TherapistID string  `json:"therapist_id"`
		Date        string  `json:"date"` // YYYY-MM-DD
		Reason      *string `json:"reason"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	date, err := interval.ParseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	block, err := h.svc.BlockDate(c.Context(), scheduling.BlockDateRequest{
		TherapistID: therapistID,
		Date:        date,
		Reason:      body.Reason,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, block)
}

// DELETE /schedule/blocked-dates/:id
func (h *ScheduleHandler) UnblockDate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid block id")
	}

	if err := h.svc.UnblockDate(c.Context(), id); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}
