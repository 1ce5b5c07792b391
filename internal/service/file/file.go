package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entatt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/attachment"
	s3pkg "github.com/carlosmariath/painel-clinica-sub001/pkg/s3"
)

var (
	ErrNotFound = errors.New("attachment not found")
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key         string
	FileName    string
	Size        int64
	ContentType string
}

type CreateAttachmentRequest struct {
	Key           string
	FileName      string
	Size          int64
	ContentType   string
	ClientID      *uuid.UUID
	AppointmentID *uuid.UUID
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error)
	CreateAttachment(ctx context.Context, uploaderID uuid.UUID, req CreateAttachmentRequest) (*repo.Attachment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*repo.Attachment, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*repo.Attachment, error)
	GetDownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, attachmentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fileService struct {
	db *repo.Client
	s3 *s3pkg.Client
}

func New(db *repo.Client, s3Client *s3pkg.Client) Service {
	return &fileService{db: db, s3: s3Client}
}

func (s *fileService) Upload(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("attachments/%s%s", uuid.Must(uuid.NewV7()), ext)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, contentType, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:         key,
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: contentType,
	}, nil
}

func (s *fileService) CreateAttachment(ctx context.Context, uploaderID uuid.UUID, req CreateAttachmentRequest) (*repo.Attachment, error) {
	c := s.db.Attachment.Create().
		SetFileName(req.FileName).
		SetContentType(req.ContentType).
		SetSizeBytes(req.Size).
		SetStorageKey(req.Key).
		SetUploadedBy(uploaderID)

	if req.ClientID != nil {
		c = c.SetClientID(*req.ClientID)
	}
	if req.AppointmentID != nil {
		c = c.SetAppointmentID(*req.AppointmentID)
	}

	att, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return att, nil
}

func (s *fileService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*repo.Attachment, error) {
	atts, err := s.db.Attachment.Query().
		Where(entatt.ClientID(clientID)).
		Order(entatt.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return atts, nil
}

func (s *fileService) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*repo.Attachment, error) {
	atts, err := s.db.Attachment.Query().
		Where(entatt.AppointmentID(appointmentID)).
		Order(entatt.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return atts, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error) {
	att, err := s.db.Attachment.Get(ctx, attachmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get attachment: %w", err)
	}

	url, err := s.s3.PresignDownload(ctx, att.StorageKey)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *fileService) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	att, err := s.db.Attachment.Get(ctx, attachmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get attachment: %w", err)
	}

	// Best-effort S3 delete (don't block DB delete if S3 fails)
	_ = s.s3.Delete(ctx, att.StorageKey)

	if err := s.db.Attachment.DeleteOne(att).Exec(ctx); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}
