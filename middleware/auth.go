package middleware

import (
	"context"
	"net/http"

	"gamicon-server/auth"
	"gamicon-server/models"
)

// Key type for context
type contextKey string

const userContextKey = contextKey("user")

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// UserFinder looks up an account by email. A nil user with a nil error
// means no such account exists.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard bundles the pre-handler checks placed in front of protected routes.
// Each check ends the request before the handler runs when it fails.
type Guard struct {
	tokens TokenVerifier
	users  UserFinder
}

func NewGuard(tokens TokenVerifier, users UserFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// RequireAuthenticated verifies the bearer token and attaches its claims to
// the request context. A missing credential is 401; a credential that fails
// verification is 403. The handler is only reached after verification
// succeeds.
func (g *Guard) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Authorization header missing or malformed", http.StatusUnauthorized)
			return
		}

		claims, err := g.tokens.Verify(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSeller checks that the account named by the email query parameter
// holds the seller role. The identity comes from the query string, not from
// token claims; existing clients depend on that contract. An unknown email
// and a non-seller role are both authorization failures.
func (g *Guard) RequireSeller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		user, err := g.users.FindByEmail(r.Context(), email)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		if user == nil || user.Role != models.RoleSeller {
			http.Error(w, "Forbidden: sellers only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOwnerMatch checks that the email query parameter names the same
// account as the authenticated token. Must run after RequireAuthenticated.
func (g *Guard) RequireOwnerMatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Email != r.URL.Query().Get("email") {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the claims attached by RequireAuthenticated.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(userContextKey).(*auth.Claims)
	return claims, ok
}

// ContextWithClaims attaches claims to a context the way
// RequireAuthenticated does. Exposed for handler tests.
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}
