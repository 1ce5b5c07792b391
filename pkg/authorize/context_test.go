package authorize

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID uuid.UUID
}

func (s *stubClaims) GetUserID() uuid.UUID { return s.userID }

func TestSubjectFromContext(t *testing.T) {
	actor := uuid.New()

	tests := []struct {
		name    string
		ctx     context.Context
		want    GroupSubject
		wantErr bool
	}{
		{
			name: "claims present",
			ctx:  WithClaimsProvider(context.Background(), &stubClaims{userID: actor}),
			want: GroupSubject(actor.String()),
		},
		{
			name:    "no claims",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name:    "nil uuid",
			ctx:     WithClaimsProvider(context.Background(), &stubClaims{}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubjectFromContext(tt.ctx)
			if tt.wantErr {
				if !errors.Is(err, ErrNoSubjectInContext) {
					t.Errorf("got err %v, want ErrNoSubjectInContext", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SubjectFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainFromResource(t *testing.T) {
	userID := "f6a7b574-7f9a-4a6b-9a51-0fbc1a1c6a01"

	if got := DomainFromResource(&userID); got != Domain("user:"+userID) {
		t.Errorf("DomainFromResource(user) = %q", got)
	}
	if got := DomainFromResource(nil); got != DomainSys {
		t.Errorf("DomainFromResource(nil) = %q, want sys", got)
	}
	empty := ""
	if got := DomainFromResource(&empty); got != DomainSys {
		t.Errorf("DomainFromResource(\"\") = %q, want sys", got)
	}
}

func TestDomainFromContext(t *testing.T) {
	actor := uuid.New()
	ctx := WithClaimsProvider(context.Background(), &stubClaims{userID: actor})

	dom, err := DomainFromContext(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dom != UserDomain(actor.String()) {
		t.Errorf("DomainFromContext() = %q", dom)
	}

	if _, err := DomainFromContext(context.Background()); err == nil {
		t.Error("expected error without claims")
	}
}
