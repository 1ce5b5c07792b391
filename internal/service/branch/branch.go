package branch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entappt "github.com/carlosmariath/painel-clinica-sub001/internal/repo/appointment"
	entbranch "github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string
	Address string
	Phone   string
}

type UpdateRequest struct {
	Name     *string
	Address  *string
	Phone    *string
	IsActive *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]*repo.Branch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Branch, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Branch, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Branch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type branchService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &branchService{db: db}
}

func (s *branchService) List(ctx context.Context, activeOnly bool) ([]*repo.Branch, error) {
	q := s.db.Branch.Query()
	if activeOnly {
		q = q.Where(entbranch.IsActive(true))
	}
	branches, err := q.Order(entbranch.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return branches, nil
}

func (s *branchService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Branch, error) {
	b, err := s.db.Branch.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

func (s *branchService) Create(ctx context.Context, req CreateRequest) (*repo.Branch, error) {
	q := s.db.Branch.Create().SetName(strings.TrimSpace(req.Name))
	if req.Address != "" {
		q = q.SetAddress(strings.TrimSpace(req.Address))
	}
	if req.Phone != "" {
		q = q.SetPhone(strings.TrimSpace(req.Phone))
	}

	b, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	return b, nil
}

func (s *branchService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Branch, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Branch.UpdateOne(b)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		if *req.Address == "" {
			upd = upd.ClearAddress()
		} else {
			upd = upd.SetAddress(strings.TrimSpace(*req.Address))
		}
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			upd = upd.SetPhone(strings.TrimSpace(*req.Phone))
		}
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	b, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update branch: %w", err)
	}
	return b, nil
}

func (s *branchService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasUpcoming, err := s.db.Appointment.Query().
		Where(
			entappt.BranchID(id),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.DateGTE(truncateToDate(time.Now())),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check appointments: %w", err)
	}
	if hasUpcoming {
		return ErrInUse
	}

	if err := s.db.Branch.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
