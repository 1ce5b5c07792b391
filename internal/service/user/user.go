package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entuser "github.com/carlosmariath/painel-clinica-sub001/internal/repo/user"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Email    string
	Name     string
	Password string
	Role     string // admin | therapist | reception
}

type UpdateRequest struct {
	Name     *string
	Role     *string
	IsActive *bool
}

type ListRequest struct {
	Role    string // optional filter
	Search  string // matches name or email, case-insensitive
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Create(ctx context.Context, req CreateRequest) (*repo.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &userService{db: db, auth: auth}
}

func (s *userService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.User.Query().Where(entuser.DeletedAtIsNil())
	if req.Role != "" {
		role, ok := parseRole(req.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		q = q.Where(entuser.RoleEQ(role))
	}
	if req.Search != "" {
		q = q.Where(entuser.Or(
			entuser.NameContainsFold(req.Search),
			entuser.EmailContainsFold(req.Search),
		))
	}

	users, err := q.
		Order(entuser.ByName()).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, req CreateRequest) (*repo.User, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(emailAddr); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	role, ok := parseRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetEmail(emailAddr).
		SetName(strings.TrimSpace(req.Name)).
		SetPasswordHash(passHash).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Grant the self-service role plus the staff role matching the account role.
	if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
		return nil, fmt.Errorf("assign self role: %w", err)
	}
	if err := authorize.SyncUserRole(ctx, s.auth, u.ID.String(), string(u.Role)); err != nil {
		return nil, fmt.Errorf("sync staff role: %w", err)
	}

	return u, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Role != nil {
		role, ok := parseRole(*req.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		upd = upd.SetRole(role)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if req.Role != nil {
		if err := authorize.SyncUserRole(ctx, s.auth, u.ID.String(), string(u.Role)); err != nil {
			return nil, fmt.Errorf("sync staff role: %w", err)
		}
	}

	return u, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.db.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	// Revoke the staff grouping so stale policies don't linger.
	if role, ok := authorize.StaffRoleForUserRole(string(u.Role)); ok {
		if err := authorize.RemoveStaffRole(ctx, s.auth, u.ID.String(), role); err != nil {
			return fmt.Errorf("remove staff role: %w", err)
		}
	}

	return nil
}

func parseRole(in string) (entuser.Role, bool) {
	switch entuser.Role(strings.ToLower(strings.TrimSpace(in))) {
	case entuser.RoleAdmin:
		return entuser.RoleAdmin, true
	case entuser.RoleTherapist:
		return entuser.RoleTherapist, true
	case entuser.RoleReception:
		return entuser.RoleReception, true
	default:
		return "", false
	}
}
