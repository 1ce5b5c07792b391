// Package catalog manages the bookable service offerings. Duration and price
// live here, but appointments snapshot both at booking time, so edits only
// affect future bookings.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entsvc "github.com/carlosmariath/painel-clinica-sub001/internal/repo/service"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/availability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           int64 // cents
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int64
	IsActive        *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]*repo.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Service, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Service, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db    *repo.Client
	cache *availability.Cache
}

func New(db *repo.Client, cache *availability.Cache) Service {
	return &catalogService{db: db, cache: cache}
}

func (s *catalogService) List(ctx context.Context, activeOnly bool) ([]*repo.Service, error) {
	q := s.db.Service.Query()
	if activeOnly {
		q = q.Where(entsvc.IsActive(true))
	}
	services, err := q.Order(entsvc.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Service, error) {
	svc, err := s.db.Service.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Create(ctx context.Context, req CreateRequest) (*repo.Service, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	q := s.db.Service.Create().
		SetName(strings.TrimSpace(req.Name)).
		SetDurationMinutes(req.DurationMinutes).
		SetPrice(req.Price)
	if req.Description != "" {
		q = q.SetDescription(req.Description)
	}

	svc, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Service.UpdateOne(svc)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		if *req.Description == "" {
			upd = upd.ClearDescription()
		} else {
			upd = upd.SetDescription(*req.Description)
		}
	}
	durationChanged := false
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		durationChanged = *req.DurationMinutes != svc.DurationMinutes
		upd = upd.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		upd = upd.SetPrice(*req.Price)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	svc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	// A new duration reshapes cached slots cut from this service.
	if durationChanged {
		s.cache.InvalidateService(ctx, id)
	}
	return svc, nil
}

// Delete deactivates rather than removes; existing appointments keep their
// snapshots and history stays intact.
func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.Service.UpdateOne(svc).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	s.cache.InvalidateService(ctx, id)
	return nil
}
