package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entuser "github.com/carlosmariath/painel-clinica-sub001/internal/repo/user"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/crypto"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/email"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/util/codes"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyLoginAttempts returns the Redis key for the failed-login counter.
func redisKeyLoginAttempts(email string) string { return "login:attempts:" + email }

// redisKeyReset returns the Redis key holding a pending password reset.
// The key embeds the SHA-256 of the token so the raw token never touches Redis.
func redisKeyReset(tokenHash string) string { return "pwreset:" + tokenHash }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mail   *email.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailCli *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mail:   mailCli,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	emailAddr := normalizeEmail(req.Email)
	if emailAddr == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	// Check lockout counter before touching the database.
	attempts, _ := s.rdb.Get(ctx, redisKeyLoginAttempts(emailAddr)).Int()
	if attempts >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, emailAddr)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counter and stamp last login
	s.rdb.Del(ctx, redisKeyLoginAttempts(emailAddr))

	upd := s.db.User.UpdateOne(u).SetLastLoginAt(time.Now())

	// Transparently upgrade hashes stored with older cost settings.
	if password.NeedsRehash(u.PasswordHash) {
		if rehashed, herr := password.Hash(req.Password); herr == nil {
			upd.SetPasswordHash(rehashed)
		}
	}

	if _, err := upd.Save(ctx); err != nil {
		slog.Warn("update user after login", "user_id", u.ID, "error", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	s.rdb.Expire(ctx, sessionKey, s.sessionTTL())

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

func (s *authService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)

	u, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Don't reveal whether the address is registered.
			slog.Debug("password reset requested for unknown email", "email", emailAddr)
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := codes.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	ttl := s.resetTTL()
	if err := s.rdb.Set(ctx, redisKeyReset(crypto.Hash(token)), u.ID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.Email.BaseURL, "/"), token)
	msg := email.BuildPasswordResetEmail(u.Email, u.Name, resetURL, int(ttl.Minutes()))
	if err := s.mail.Send(ctx, msg); err != nil {
		// Log but don't fail — the token stays valid and the request can be retried
		slog.Warn("failed to send password reset email", "email", emailAddr, "error", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	key := redisKeyReset(crypto.Hash(strings.TrimSpace(token)))
	userIDStr, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("redis get reset token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrResetTokenInvalid
	}

	passHash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOneID(userID).SetPasswordHash(passHash).Save(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("update password: %w", err)
	}

	// One-shot token; all existing sessions are revoked after a reset.
	s.rdb.Del(ctx, key)
	s.revokeUserSessions(ctx, userID)

	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	passHash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(passHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), s.sessionTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, emailAddr string) {
	key := redisKeyLoginAttempts(emailAddr)
	attempts, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("failed to record login attempt", "error", err)
		return
	}
	if attempts == 1 || attempts >= maxLoginAttempts {
		// First failure starts the window; hitting the cap extends it to the
		// full lockout period.
		s.rdb.Expire(ctx, key, accountLockMins*time.Minute)
	}
}

// revokeUserSessions drops every Redis session belonging to the user.
// Sessions are keyed by session ID, so this walks the session keyspace.
func (s *authService) revokeUserSessions(ctx context.Context, userID uuid.UUID) {
	want := userID.String()
	iter := s.rdb.Scan(ctx, 0, redisKeySession("*"), 200).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if val, err := s.rdb.Get(ctx, key).Result(); err == nil && val == want {
			s.rdb.Del(ctx, key)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("failed to scan sessions for revocation", "user_id", userID, "error", err)
	}
}

func (s *authService) sessionTTL() time.Duration {
	if m := s.cfg.Authentication.SessionTTLMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	if d := s.cfg.Authentication.Paseto.RefreshTTLDays; d > 0 {
		return time.Duration(d) * 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

func (s *authService) resetTTL() time.Duration {
	if m := s.cfg.Authentication.ResetTTLMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return 30 * time.Minute
}

func normalizeEmail(in string) string {
	return strings.ToLower(strings.TrimSpace(in))
}
