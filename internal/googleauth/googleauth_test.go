package googleauth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

// makeIDToken builds an unsigned JWT with the given payload, enough for the
// unverified decode path.
func makeIDToken(t *testing.T, payload map[string]interface{}) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + "."
}

func TestParseIDToken(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{
		"sub":     "108234",
		"email":   "jane@example.com",
		"name":    "Jane Doe",
		"picture": "https://example.com/jane.png",
	})

	profile, err := parseIDToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if profile.Sub != "108234" || profile.Email != "jane@example.com" {
		t.Errorf("unexpected identity: %+v", profile)
	}
	if profile.Name != "Jane Doe" || profile.Picture != "https://example.com/jane.png" {
		t.Errorf("unexpected profile fields: %+v", profile)
	}
}

func TestParseIDTokenMissingSubject(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{"email": "jane@example.com"})

	if _, err := parseIDToken(token); !errors.Is(err, ErrExchangeFailed) {
		t.Errorf("expected exchange failure for missing subject, got %v", err)
	}
}

func TestParseIDTokenMissingEmail(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{"sub": "108234"})

	if _, err := parseIDToken(token); !errors.Is(err, ErrExchangeFailed) {
		t.Errorf("expected exchange failure for missing email, got %v", err)
	}
}

func TestParseIDTokenGarbage(t *testing.T) {
	if _, err := parseIDToken("not-a-jwt"); err == nil {
		t.Error("expected decode error for malformed token")
	}
}
