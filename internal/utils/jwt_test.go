package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-123", []string{models.CapabilityApplication}, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != "user-123" {
		t.Errorf("expected user-123, got %s", token.UserID)
	}

	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != testIssuer || claims.Subject != "user-123" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Scope != models.CapabilityApplication {
		t.Errorf("unexpected scope %q", claims.Scope)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"negative duration", "iss", "u", -time.Minute, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, nil, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "user-7", []string{"api", models.CapabilityApplication}, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != "user-7" {
		t.Errorf("expected user-7, got %s", parsed.UserID)
	}
	if !parsed.HasCapability(models.CapabilityApplication) || !parsed.HasCapability("api") {
		t.Errorf("unexpected capabilities %v", parsed.Capabilities)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken(testIssuer, "u", nil, time.Hour, testSignKey)

	noneSigned := jwt.NewWithClaims(jwt.SigningMethodNone, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "u",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneString, _ := noneSigned.SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noSubjectString, _ := noSubject.SignedString([]byte(testSignKey))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"garbage", "not-a-token", testSignKey, testIssuer},
		{"wrong key", valid.SignedString, "other", testIssuer},
		{"wrong issuer", valid.SignedString, testSignKey, "other"},
		{"alg none", noneString, testSignKey, testIssuer},
		{"no subject", noSubjectString, testSignKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "u",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"  Bearer   abc  ", "abc", nil},
		{"Bearer", "", ErrInvalidBearerHeader},
		{"Bearer ", "", ErrEmptyBearerToken},
		{"Basic abc", "", ErrInvalidBearerHeader},
		{"", "", ErrInvalidBearerHeader},
		{"Bearer abc def", "", ErrInvalidBearerHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
