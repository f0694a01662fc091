package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gamicon-server/models"
)

type stubUserFinder struct {
	user *models.User
	err  error
}

func (s *stubUserFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.user, s.err
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	user := &models.User{
		Name:     "Rafi",
		Email:    "rafi@example.com",
		Role:     models.RoleSeller,
		Verified: true,
	}
	svc := NewTokenService([]byte("test-secret"), &stubUserFinder{user: user})

	token, err := svc.Issue(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != user.Email {
		t.Errorf("claims email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.RoleSeller {
		t.Errorf("claims role = %q, want %q", claims.Role, models.RoleSeller)
	}
	if !claims.Verified {
		t.Error("claims verified = false, want true")
	}

	expiry := time.Unix(claims.ExpiresAt, 0)
	want := time.Now().Add(TokenLifetime)
	if d := want.Sub(expiry); d < -time.Minute || d > time.Minute {
		t.Errorf("expiry %v not within a minute of %v", expiry, want)
	}
}

func TestIssueUnknownEmail(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), &stubUserFinder{})

	_, err := svc.Issue(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("Issue error = %v, want ErrUnknownUser", err)
	}
}

func TestIssuePropagatesLookupFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewTokenService([]byte("test-secret"), &stubUserFinder{err: storeErr})

	_, err := svc.Issue(context.Background(), "rafi@example.com")
	if !errors.Is(err, storeErr) {
		t.Fatalf("Issue error = %v, want the store error", err)
	}
}

func TestVerifyCorruptedSignature(t *testing.T) {
	user := &models.User{Email: "rafi@example.com", Role: models.RoleBuyer}
	svc := NewTokenService([]byte("test-secret"), &stubUserFinder{user: user})

	token, err := svc.Issue(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + parts[2] + "aaaa"

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	user := &models.User{Email: "rafi@example.com", Role: models.RoleBuyer}
	issuer := NewTokenService([]byte("key-one"), &stubUserFinder{user: user})
	verifier := NewTokenService([]byte("key-two"), &stubUserFinder{user: user})

	token, err := issuer.Issue(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), &stubUserFinder{})

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"empty header", "", "", ErrTokenMissing},
		{"wrong scheme", "Basic abc", "", ErrTokenMissing},
		{"scheme only", "Bearer", "", ErrTokenMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BearerToken(%q) error = %v, want %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
