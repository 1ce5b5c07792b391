package pasetotoken

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/config"
)

const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber retrieves the verified claims stored by the auth middleware.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewPasetoManager builds a Manager from the central configuration.
func NewPasetoManager(cfg *config.Config) (*Manager, error) {
	p := cfg.Authentication.Paseto

	return New(Config{
		KeyHex:     p.KeyHex,
		Issuer:     p.Issuer,
		Audience:   p.Audience,
		AccessTTL:  time.Duration(p.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(p.RefreshTTLDays) * 24 * time.Hour,
	})
}
