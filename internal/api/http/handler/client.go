package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/client"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrInvalidPhone),
		errors.Is(err, client.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, client.ErrHasAppointments):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	clients, err := h.svc.List(c.Context(), client.ListRequest{
		Search:  q.Search,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, clients)
}

// GET /clients/:id
func (h *ClientHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	cl, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, cl)
}

// GET /clients/:id/document
func (h *ClientHandler) Document(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	doc, err := h.svc.Document(c.Context(), id)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, fiber.Map{"document": doc})
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Document  string `json:"document"`
		BirthDate string `json:"birth_date"` // YYYY-MM-DD
		Notes     string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	req := client.CreateRequest{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Document: body.Document,
		Notes:    body.Notes,
	}
	if body.BirthDate != "" {
		bd, err := interval.ParseDate(body.BirthDate)
		if err != nil {
			return badRequest(c, "invalid birth_date")
		}
		req.BirthDate = &bd
	}

	cl, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapClientError(c, err)
	}
	return created(c, cl)
}

// PATCH /clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Document  *string `json:"document"`
		BirthDate *string `json:"birth_date"`
		Notes     *string `json:"notes"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	req := client.UpdateRequest{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Document: body.Document,
		Notes:    body.Notes,
		IsActive: body.IsActive,
	}
	if body.BirthDate != nil && *body.BirthDate != "" {
		bd, err := interval.ParseDate(*body.BirthDate)
		if err != nil {
			return badRequest(c, "invalid birth_date")
		}
		req.BirthDate = &bd
	}
	cl, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, cl)
}

// DELETE /clients/:id
func (h *ClientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapClientError(c, err)
	}
	return noContent(c)
}
