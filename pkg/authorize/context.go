package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// ClaimsProvider is implemented by any claims type that can identify the
// acting user. The PASETO claims type satisfies it.
type ClaimsProvider interface {
	GetUserID() uuid.UUID
}

type ctxKeyClaimsProvider struct{}

// WithClaimsProvider stores the authenticated actor's claims in the context.
// The auth middleware attaches this so services can resolve the actor.
func WithClaimsProvider(ctx context.Context, cp ClaimsProvider) context.Context {
	return context.WithValue(ctx, ctxKeyClaimsProvider{}, cp)
}

// SubjectFromContext extracts the GroupSubject (user ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id, err := UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return GroupSubject(id.String()), nil
}

// UserIDFromContext extracts the acting user's ID from context.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	v := ctx.Value(ctxKeyClaimsProvider{})
	if v == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	cp, ok := v.(ClaimsProvider)
	if !ok {
		return uuid.Nil, ErrNoSubjectInContext
	}

	userID := cp.GetUserID()
	if userID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return userID, nil
}

// DomainFromResource returns the user's private domain when a user ID is
// given, and the system domain otherwise.
func DomainFromResource(userID *string) Domain {
	if userID != nil && *userID != "" {
		return UserDomain(*userID)
	}
	return DomainSys
}

// DomainFromContext returns the acting user's own domain.
func DomainFromContext(ctx context.Context) (Domain, error) {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(string(subject)), nil
}
