package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidDuration),
		errors.Is(err, catalog.ErrInvalidPrice):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /services
func (h *CatalogHandler) List(c fiber.Ctx) error {
	var q struct {
		ActiveOnly bool `query:"active_only"`
	}
	_ = c.Bind().Query(&q)

	services, err := h.svc.List(c.Context(), q.ActiveOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, services)
}

// GET /services/:id
func (h *CatalogHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	svc, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// POST /services
func (h *CatalogHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		DurationMinutes int    `json:"duration_minutes"`
		Price           int64  `json:"price"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	svc, err := h.svc.Create(c.Context(), catalog.CreateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, svc)
}

// PATCH /services/:id
func (h *CatalogHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		DurationMinutes *int    `json:"duration_minutes"`
		Price           *int64  `json:"price"`
		IsActive        *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	svc, err := h.svc.Update(c.Context(), id, catalog.UpdateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
		IsActive:        body.IsActive,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// DELETE /services/:id
func (h *CatalogHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapCatalogError(c, err)
	}
	return noContent(c)
}
