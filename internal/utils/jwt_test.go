package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("harborlight-intake", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}
	if parts := strings.Split(token.SignedString, "."); len(parts) != 3 {
		t.Errorf("expected compact JWS with 3 segments, got %d", len(parts))
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "secret"},
		{name: "zero duration", issuer: "harborlight-intake", duration: 0, signKey: "secret"},
		{name: "empty sign key", issuer: "harborlight-intake", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 42, tt.duration, tt.signKey); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("harborlight-intake", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "harborlight-intake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, _ := GenerateJWTToken("harborlight-intake", 42, time.Hour, "secret")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", "harborlight-intake"); err == nil {
		t.Fatal("expected signature validation error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, _ := GenerateJWTToken("someone-else", 42, time.Hour, "secret")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "harborlight-intake"); err == nil {
		t.Fatal("expected issuer validation error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, _ := GenerateJWTToken("harborlight-intake", 42, -time.Minute, "secret")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "harborlight-intake"); err == nil {
		t.Fatal("expected expiry validation error, got nil")
	}
}
