package therapist

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	entuser "github.com/carlosmariath/painel-clinica-sub001/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name      string
	Specialty string
	Email     string
	UserID    *uuid.UUID // console account, optional
}

type UpdateRequest struct {
	Name      *string
	Specialty *string
	Email     *string
	UserID    *uuid.UUID
	ClearUser bool
	IsActive  *bool
}

type ListRequest struct {
	Search     string
	ActiveOnly bool
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Therapist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Therapist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Therapist, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Therapist, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Therapist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type therapistService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &therapistService{db: db}
}

func (s *therapistService) List(ctx context.Context, req ListRequest) ([]*repo.Therapist, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Therapist.Query().Where(enttherapist.DeletedAtIsNil())
	if req.ActiveOnly {
		q = q.Where(enttherapist.IsActive(true))
	}
	if req.Search != "" {
		q = q.Where(enttherapist.Or(
			enttherapist.NameContainsFold(req.Search),
			enttherapist.SpecialtyContainsFold(req.Search),
		))
	}

	list, err := q.
		Order(enttherapist.ByName()).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	return list, nil
}

func (s *therapistService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Query().
		Where(enttherapist.ID(id), enttherapist.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return th, nil
}

func (s *therapistService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Query().
		Where(enttherapist.UserID(userID), enttherapist.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get therapist by user: %w", err)
	}
	return th, nil
}

func (s *therapistService) Create(ctx context.Context, req CreateRequest) (*repo.Therapist, error) {
	q := s.db.Therapist.Create().SetName(strings.TrimSpace(req.Name))

	if req.Specialty != "" {
		q = q.SetSpecialty(strings.TrimSpace(req.Specialty))
	}
	if req.Email != "" {
		emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(emailAddr); err != nil {
			return nil, ErrInvalidEmail
		}
		q = q.SetEmail(emailAddr)
	}
	if req.UserID != nil {
		if err := s.checkUserLink(ctx, *req.UserID, nil); err != nil {
			return nil, err
		}
		q = q.SetUserID(*req.UserID)
	}

	th, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create therapist: %w", err)
	}
	return th, nil
}

func (s *therapistService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Therapist, error) {
	th, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Therapist.UpdateOne(th)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Specialty != nil {
		if *req.Specialty == "" {
			upd = upd.ClearSpecialty()
		} else {
			upd = upd.SetSpecialty(strings.TrimSpace(*req.Specialty))
		}
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
	switch {
	case req.ClearUser:
		upd = upd.ClearUserID()
	case req.UserID != nil:
		if err := s.checkUserLink(ctx, *req.UserID, &id); err != nil {
			return nil, err
		}
		upd = upd.SetUserID(*req.UserID)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	th, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update therapist: %w", err)
	}
	return th, nil
}

func (s *therapistService) Delete(ctx context.Context, id uuid.UUID) error {
	th, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hasUpcoming, err := s.db.Appointment.Query().
		Where(
			entappt.TherapistID(id),
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

	_, err = s.db.Therapist.UpdateOne(th).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete therapist: %w", err)
	}
	return nil
}

// checkUserLink validates the console account exists and is not already
// linked to a different therapist.
func (s *therapistService) checkUserLink(ctx context.Context, userID uuid.UUID, excludeID *uuid.UUID) error {
	exists, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	q := s.db.Therapist.Query().
		Where(enttherapist.UserID(userID), enttherapist.DeletedAtIsNil())
	if excludeID != nil {
		q = q.Where(enttherapist.IDNEQ(*excludeID))
	}
	linked, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user link: %w", err)
	}
	if linked {
		return ErrUserAlreadyUsed
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
