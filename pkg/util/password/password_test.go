package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if !strings.HasPrefix(h, "$argon2id$") {
		t.Errorf("hash has wrong prefix: %q", h)
	}

	if err := Verify(h, "correct horse battery staple"); err != nil {
		t.Errorf("Verify with correct password: %v", err)
	}

	if err := Verify(h, "wrong password"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify with wrong password: got %v, want ErrMismatch", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestVerifyMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", ErrInvalidHash},
		{"not a hash", "plaintext", ErrInvalidHash},
		{"wrong algorithm", "$bcrypt$v=19$m=32768,t=4,p=2$c2FsdA$aGFzaA", ErrInvalidHash},
		{"missing sections", "$argon2id$v=19$m=32768,t=4,p=2", ErrInvalidHash},
		{"bad version", "$argon2id$v=12$m=32768,t=4,p=2$c2FsdA$aGFzaA", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$m=abc$c2FsdA$aGFzaA", ErrInvalidHash},
		{"bad salt encoding", "$argon2id$v=19$m=32768,t=4,p=2$!!!$aGFzaA", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.encoded, "whatever"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify(%q) = %v, want %v", tt.encoded, err, tt.wantErr)
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	h, err := Hash("pw")
	if err != nil {
		t.Fatal(err)
	}
	if NeedsRehash(h) {
		t.Error("fresh hash reported as needing rehash")
	}

	// Weaker settings than the current ones.
	old := "$argon2id$v=19$m=16384,t=2,p=1$c29tZXNhbHRzb21lc2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if !NeedsRehash(old) {
		t.Error("hash with outdated settings not flagged for rehash")
	}

	if !NeedsRehash("garbage") {
		t.Error("undecodable hash not flagged for rehash")
	}
}
