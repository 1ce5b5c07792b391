package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/file"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

func mapFileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, file.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /attachments
// Multipart upload; optional client_id / appointment_id form fields link the
// attachment at creation time.
func (h *FileHandler) Upload(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.svc.Upload(c.Context(), fh)
	if err != nil {
		return mapFileError(c, err)
	}

	req := file.CreateAttachmentRequest{
		Key:         res.Key,
		FileName:    res.FileName,
		Size:        res.Size,
		ContentType: res.ContentType,
	}
	if v := c.FormValue("client_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if v := c.FormValue("appointment_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &id
	}

	att, err := h.svc.CreateAttachment(c.Context(), claims.UserID, req)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, att)
}

// GET /attachments
func (h *FileHandler) List(c fiber.Ctx) error {
	var q struct {
		ClientID      string `query:"client_id"`
		AppointmentID string `query:"appointment_id"`
	}
	_ = c.Bind().Query(&q)

	switch {
	case q.ClientID != "":
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		atts, err := h.svc.ListByClient(c.Context(), id)
		if err != nil {
			return mapFileError(c, err)
		}
		return ok(c, atts)
	case q.AppointmentID != "":
		id, err := uuid.Parse(q.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		atts, err := h.svc.ListByAppointment(c.Context(), id)
		if err != nil {
			return mapFileError(c, err)
		}
		return ok(c, atts)
	default:
		return badRequest(c, "client_id or appointment_id is required")
	}
}

// GET /attachments/:id/download
func (h *FileHandler) Download(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid attachment id")
	}

	url, err := h.svc.GetDownloadURL(c.Context(), id)
	if err != nil {
		return mapFileError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// DELETE /attachments/:id
func (h *FileHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid attachment id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapFileError(c, err)
	}
	return noContent(c)
}
