package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"gamicon-server/models"
)

var (
	// ErrTokenMissing means no credential was presented at all.
	ErrTokenMissing = errors.New("no bearer token presented")
	// ErrTokenInvalid means a credential was presented but failed
	// signature or expiry checks.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrUnknownUser means token issuance was requested for an email with
	// no matching account.
	ErrUnknownUser = errors.New("no account for the given email")
)

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = 10 * 24 * time.Hour

// Claims is the identity payload carried by a session token: the account
// record as it stood at issuance time.
type Claims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	jwt.StandardClaims
}

// UserFinder looks up an account by email. A nil user with a nil error
// means no such account exists.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	key   []byte
	users UserFinder
}

func NewTokenService(key []byte, users UserFinder) *TokenService {
	return &TokenService{key: key, users: users}
}

// Issue signs a session token for the account registered under email.
// Returns ErrUnknownUser when no account matches.
func (s *TokenService) Issue(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnknownUser
	}

	claims := &Claims{
		Email:    user.Email,
		Role:     user.Role,
		Verified: user.Verified,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// BearerToken extracts the credential from an Authorization header value.
// An empty or malformed header means no credential was presented, which
// callers must treat differently from a credential that fails verification.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrTokenMissing
	}
	return parts[1], nil
}

// Verify validates the signature and expiry of a token and returns its
// claims. Every failure maps to ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
