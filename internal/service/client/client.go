package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	entclient "github.com/carlosmariath/painel-clinica-sub001/internal/repo/patient"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo/predicate"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/crypto"
)

// defaultPhoneRegion is assumed when a number arrives without a country code.
const defaultPhoneRegion = "BR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name      string
	Email     string
	Phone     string
	Document  string // national document, stored encrypted
	BirthDate *time.Time
	Notes     string
}

type UpdateRequest struct {
	Name      *string
	Email     *string
	Phone     *string
	Document  *string
	BirthDate *time.Time
	Notes     *string
	IsActive  *bool
}

type ListRequest struct {
	Search  string // matches name, email or normalized phone
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Document returns the decrypted national document, or "" when unset.
	Document(ctx context.Context, id uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("client service: invalid encryption key: %w", err)
	}
	return &clientService{db: db, encKey: encKey}, nil
}

func (s *clientService) List(ctx context.Context, req ListRequest) ([]*repo.Patient, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Patient.Query().Where(entclient.DeletedAtIsNil())
	if req.Search != "" {
		preds := []predicate.Patient{
			entclient.NameContainsFold(req.Search),
			entclient.EmailContainsFold(req.Search),
		}
		if e164, err := normalizePhone(req.Search); err == nil {
			preds = append(preds, entclient.Phone(e164))
		}
		q = q.Where(entclient.Or(preds...))
	}

	clients, err := q.
		Order(entclient.ByName()).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error) {
	c, err := s.db.Patient.Query().
		Where(entclient.ID(id), entclient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *clientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	q := s.db.Patient.Create().SetName(strings.TrimSpace(req.Name))

	if req.Email != "" {
		emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(emailAddr); err != nil {
			return nil, ErrInvalidEmail
		}
		q = q.SetEmail(emailAddr)
	}
	if req.Phone != "" {
		e164, err := normalizePhone(req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		q = q.SetPhone(e164)
	}
	if req.Document != "" {
		enc, err := crypto.Encrypt(s.encKey, strings.TrimSpace(req.Document))
		if err != nil {
			return nil, fmt.Errorf("encrypt document: %w", err)
		}
		q = q.SetDocument(enc)
	}
	if req.BirthDate != nil {
		q = q.SetBirthDate(*req.BirthDate)
	}
	if req.Notes != "" {
		q = q.SetNotes(req.Notes)
	}

	c, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(c)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		if *req.Email == "" {
			upd = upd.ClearEmail()
		} else {
			emailAddr := strings.ToLower(strings.TrimSpace(*req.Email))
			if _, err := mail.ParseAddress(emailAddr); err != nil {
				return nil, ErrInvalidEmail
			}
			upd = upd.SetEmail(emailAddr)
		}
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			e164, err := normalizePhone(*req.Phone)
			if err != nil {
				return nil, ErrInvalidPhone
			}
			upd = upd.SetPhone(e164)
		}
	}
	if req.Document != nil {
		if *req.Document == "" {
			upd = upd.ClearDocument()
		} else {
			enc, err := crypto.Encrypt(s.encKey, strings.TrimSpace(*req.Document))
			if err != nil {
				return nil, fmt.Errorf("encrypt document: %w", err)
			}
			upd = upd.SetDocument(enc)
		}
	}
	if req.BirthDate != nil {
		upd = upd.SetBirthDate(*req.BirthDate)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	c, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Refuse removal while future non-cancelled appointments exist.
	hasUpcoming, err := s.db.Appointment.Query().
		Where(
			entappt.ClientID(id),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.DateGTE(truncateToDate(time.Now())),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check appointments: %w", err)
	}
	if hasUpcoming {
		return ErrHasAppointments
	}

	_, err = s.db.Patient.UpdateOne(c).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (s *clientService) Document(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Document == nil || *c.Document == "" {
		return "", nil
	}
	doc, err := crypto.Decrypt(s.encKey, *c.Document)
	if err != nil {
		return "", fmt.Errorf("decrypt document: %w", err)
	}

	// Document is sensitive; record who read it.
	if actor, aerr := authorize.UserIDFromContext(ctx); aerr == nil {
		slog.Info("client document accessed", "client_id", id, "actor", actor)
	} else {
		slog.Info("client document accessed", "client_id", id)
	}

	return doc, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
