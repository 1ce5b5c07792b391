package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/therapist"
)

type TherapistHandler struct {
	svc therapist.Service
}

func NewTherapistHandler(svc therapist.Service) *TherapistHandler {
	return &TherapistHandler{svc: svc}
}

func mapTherapistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, therapist.ErrNotFound),
		errors.Is(err, therapist.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, therapist.ErrUserAlreadyUsed),
		errors.Is(err, therapist.ErrHasAppointments):
		return conflict(c, err.Error())
	case errors.Is(err, therapist.ErrInvalidEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /therapists
func (h *TherapistHandler) List(c fiber.Ctx) error {
	var q struct {
		Search     string `query:"search"`
		ActiveOnly bool   `query:"active_only"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.List(c.Context(), therapist.ListRequest{
		Search:     q.Search,
		ActiveOnly: q.ActiveOnly,
		Page:       q.Page,
		PerPage:    q.PerPage,
	})
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, list)
}

// GET /therapists/:id
func (h *TherapistHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	th, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, th)
}

// POST /therapists
func (h *TherapistHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name      string  `json:"name"`
		Specialty string  `json:"specialty"`
		Email     string  `json:"email"`
		UserID    *string `json:"user_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	req := therapist.CreateRequest{
		Name:      body.Name,
		Specialty: body.Specialty,
		Email:     body.Email,
	}
	if body.UserID != nil && *body.UserID != "" {
		uid, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &uid
	}

	th, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return created(c, th)
}

// PATCH /therapists/:id
func (h *TherapistHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var body struct {
		Name      *string `json:"name"`
		Specialty *string `json:"specialty"`
		Email     *string `json:"email"`
		UserID    *string `json:"user_id"` // empty string unlinks
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	req := therapist.UpdateRequest{
		Name:      body.Name,
		Specialty: body.Specialty,
		Email:     body.Email,
		IsActive:  body.IsActive,
	}
	if body.UserID != nil {
		if *body.UserID == "" {
			req.ClearUser = true
		} else {
			uid, err := uuid.Parse(*body.UserID)
			if err != nil {
				return badRequest(c, "invalid user_id")
			}
			req.UserID = &uid
		}
	}

	th, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, th)
}

// DELETE /therapists/:id
func (h *TherapistHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapTherapistError(c, err)
	}
	return noContent(c)
}
