package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := KeyFromHex(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)

	for _, plaintext := range []string{"", "123.456.789-00", "São Paulo — unidade centro"} {
		encoded, err := Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", plaintext, err)
		}
		got, err := Decrypt(key, encoded)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", plaintext, err)
		}
		if got != plaintext {
			t.Errorf("round trip = %q, want %q", got, plaintext)
		}
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	key := testKey(t)

	a, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical output")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	encoded, err := Encrypt(testKey(t), "secret")
	if err != nil {
		t.Fatal(err)
	}

	otherKey, _ := KeyFromHex(strings.Repeat("cd", 32))
	if _, err := Decrypt(otherKey, encoded); err == nil {
		t.Error("expected decryption with the wrong key to fail")
	}
}

func TestDecryptMalformed(t *testing.T) {
	key := testKey(t)

	if _, err := Decrypt(key, "not base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}

	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	if _, err := Decrypt(key, short); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("got %v, want ErrCiphertextTooShort", err)
	}
}

func TestKeyFromHex(t *testing.T) {
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("expected error for non-hex input")
	}
	if _, err := KeyFromHex("abcd"); !errors.Is(err, ErrInvalidKey) {
		t.Error("expected ErrInvalidKey for short key")
	}
}

func TestHashDeterministic(t *testing.T) {
	if Hash("token") != Hash("token") {
		t.Error("Hash is not deterministic")
	}
	if Hash("token") == Hash("other") {
		t.Error("distinct inputs hashed to the same digest")
	}
	if len(Hash("token")) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(Hash("token")))
	}
}
