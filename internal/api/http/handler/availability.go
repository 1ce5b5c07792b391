package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrTherapistNotFound),
		errors.Is(err, availability.ErrServiceNotFound),
		errors.Is(err, availability.ErrBranchNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /availability
func (h *AvailabilityHandler) Compute(c fiber.Ctx) error {
	var q struct {
		TherapistID string `query:"therapist_id"`
		Date        string `query:"date"` // YYYY-MM-DD
		ServiceID   string `query:"service_id"`
		BranchID    string `query:"branch_id"`
	}
	_ = c.Bind().Query(&q)

	therapistID, err := uuid.Parse(q.TherapistID)
	if err != nil {
		return badRequest(c, "therapist_id is required")
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		return badRequest(c, "service_id is required")
	}
	date, err := interval.ParseDate(q.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	req := availability.ComputeRequest{
		TherapistID: therapistID,
		Date:        date,
		ServiceID:   serviceID,
	}
	if q.BranchID != "" {
		branchID, err := uuid.Parse(q.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch_id")
		}
		req.BranchID = &branchID
	}

	res, err := h.svc.Compute(c.Context(), req)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, res)
}

// GET /availability/aggregate
func (h *AvailabilityHandler) Aggregate(c fiber.Ctx) error {
	var q struct {
		TherapistIDs string `query:"therapist_ids"` // comma-separated
		Date         string `query:"date"`
		ServiceID    string `query:"service_id"`
		BranchID     string `query:"branch_id"`
	}
	_ = c.Bind().Query(&q)

	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		return badRequest(c, "service_id is required")
	}
	date, err := interval.ParseDate(q.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	var ids []uuid.UUID
	for _, raw := range strings.Split(q.TherapistIDs, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid therapist id: "+raw)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return badRequest(c, "therapist_ids is required")
	}

	req := availability.AggregateRequest{
		TherapistIDs: ids,
		Date:         date,
		ServiceID:    serviceID,
	}
	if q.BranchID != "" {
		branchID, err := uuid.Parse(q.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch_id")
		}
		req.BranchID = &branchID
	}

	res, err := h.svc.ComputeForMany(c.Context(), req)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, res)
}
