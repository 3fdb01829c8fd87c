package tokens

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/samara-logia/cadaster-portal/internal/config"
)

func TestGenerateAdminToken_ValidAndClaims(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-32-bytes-should-be-long-enough"

	tokenStr, err := GenerateAdminToken(cfg, "office", 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	sub, err := ParseAdminToken(cfg, tokenStr)
	if err != nil {
		t.Fatalf("ParseAdminToken error: %v", err)
	}
	if sub != "office" {
		t.Fatalf("unexpected subject: got=%q want=%q", sub, "office")
	}
}

func TestParseAdminToken_Expiry(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "another-secret-32-bytes-longgggg"
	tokenStr, err := GenerateAdminToken(cfg, "office", 1*time.Second)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	// wait for expiry
	time.Sleep(2 * time.Second)
	if _, err := ParseAdminToken(cfg, tokenStr); err == nil {
		t.Fatalf("expected parse to fail after expiry")
	}
}

func TestParseAdminToken_WrongSecretFails(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "secret-one-32-bytes-xxxxxxxxxxxxxxxx"
	tokenStr, err := GenerateAdminToken(cfg, "office", 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	other := &config.Config{}
	other.JWT.Secret = "different-secret-xxxxxxxxxxxxxxxx"
	if _, err := ParseAdminToken(other, tokenStr); err == nil {
		t.Fatalf("expected parse to fail with wrong secret")
	}
}

func TestParseAdminToken_Malformed(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "x"
	if _, err := ParseAdminToken(cfg, "not.a.jwt"); err == nil {
		t.Fatalf("expected parse to fail for malformed token")
	}
}

// Rejected when alg=none (unsigned token)
func TestParseAdminToken_AlgNoneRejected(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "x"
	payload := `{"sub":"u-none","role":"admin","exp":9999999999}`
	headerEnc := (&jwt.Token{}).EncodeSegment([]byte(`{"alg":"none"}`))
	payloadEnc := (&jwt.Token{}).EncodeSegment([]byte(payload))
	tok := headerEnc + "." + payloadEnc + "."
	if _, err := ParseAdminToken(cfg, tok); err == nil {
		t.Fatalf("expected parse to reject alg=none token")
	}
}

// Tampering with payload must fail signature verification
func TestParseAdminToken_TamperedPayload(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "tamper-test-secret-32-bytes-xxxxxxx"
	tokenStr, err := GenerateAdminToken(cfg, "office", 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token parts")
	}
	payloadBytes, _ := jwt.NewParser().DecodeSegment(parts[1])
	payloadStr := strings.Replace(string(payloadBytes), "office", "attacker", 1)
	parts[1] = (&jwt.Token{}).EncodeSegment([]byte(payloadStr))
	if _, err := ParseAdminToken(cfg, strings.Join(parts, ".")); err == nil {
		t.Fatalf("expected signature verification to fail for tampered token")
	}
}

func TestParseAdminToken_RoleRequired(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "role-test-secret-32-bytes-xxxxxxxxx"
	claims := jwt.MapClaims{"sub": "citizen", "iat": time.Now().Unix(), "exp": time.Now().Add(time.Minute).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAdminToken(cfg, raw); err == nil {
		t.Fatalf("expected token without admin role to be rejected")
	}
}
