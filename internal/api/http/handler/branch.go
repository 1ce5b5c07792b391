package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/branch"
)

type BranchHandler struct {
	svc branch.Service
}

func NewBranchHandler(svc branch.Service) *BranchHandler {
	return &BranchHandler{svc: svc}
}

func mapBranchError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, branch.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, branch.ErrInUse):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /branches
func (h *BranchHandler) List(c fiber.Ctx) error {
	var q struct {
		ActiveOnly bool `query:"active_only"`
	}
	_ = c.Bind().Query(&q)

	branches, err := h.svc.List(c.Context(), q.ActiveOnly)
	if err != nil {
		return mapBranchError(c, err)
	}
	return ok(c, branches)
}

// GET /branches/:id
func (h *BranchHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid branch id")
	}

	b, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapBranchError(c, err)
	}
	return ok(c, b)
}

// POST /branches
func (h *BranchHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	b, err := h.svc.Create(c.Context(), branch.CreateRequest{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
	})
	if err != nil {
		return mapBranchError(c, err)
	}
	return created(c, b)
}

// PATCH /branches/:id
func (h *BranchHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid branch id")
	}

	var body struct {
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	b, err := h.svc.Update(c.Context(), id, branch.UpdateRequest{
		Name:     body.Name,
		Address:  body.Address,
		Phone:    body.Phone,
		IsActive: body.IsActive,
	})
	if err != nil {
		return mapBranchError(c, err)
	}
	return ok(c, b)
}

// DELETE /branches/:id
func (h *BranchHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid branch id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapBranchError(c, err)
	}
	return noContent(c)
}
