package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/internal/service/auth"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrWrongPassword):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountDisabled),
		errors.Is(err, auth.ErrAccountLocked):
		return forbidden(c)
	case errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrResetTokenInvalid):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrInvalidToken):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

func tokensResponse(t *auth.AuthTokens) fiber.Map {
	return fiber.Map{
		"access_token":  t.AccessToken,
		"refresh_token": t.RefreshToken,
		"expires_in":    t.ExpiresIn,
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokensResponse(tokens))
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().Body(&body); err != nil || body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokensResponse(tokens))
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/password/forgot
func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.svc.RequestPasswordReset(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}
	// Always 204: existence of the address is not revealed.
	return noContent(c)
}

// POST /auth/password/reset
func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var body struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.svc.ResetPassword(c.Context(), body.Token, body.NewPassword); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/password/change
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, body.CurrentPassword, body.NewPassword); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}
