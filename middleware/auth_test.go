package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamicon-server/auth"
	"gamicon-server/models"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) Verify(tokenString string) (*auth.Claims, error) {
	return s.claims, s.err
}

type stubFinder struct {
	user *models.User
	err  error
}

func (s *stubFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.user, s.err
}

// nextRecorder tracks whether the wrapped handler was reached.
type nextRecorder struct {
	called bool
	claims *auth.Claims
	ok     bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.claims, n.ok = ClaimsFromContext(r.Context())
	})
}

func TestRequireAuthenticatedMissingHeader(t *testing.T) {
	guard := NewGuard(&stubVerifier{}, &stubFinder{})
	next := &nextRecorder{}

	req := httptest.NewRequest("GET", "/bookings", nil)
	rec := httptest.NewRecorder()
	guard.RequireAuthenticated(next.handler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if next.called {
		t.Error("handler ran without a credential")
	}
}

func TestRequireAuthenticatedInvalidToken(t *testing.T) {
	guard := NewGuard(&stubVerifier{err: auth.ErrTokenInvalid}, &stubFinder{})
	next := &nextRecorder{}

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	guard.RequireAuthenticated(next.handler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if next.called {
		t.Error("handler ran with an invalid credential")
	}
}

func TestRequireAuthenticatedAttachesClaims(t *testing.T) {
	claims := &auth.Claims{Email: "rafi@example.com", Role: models.RoleBuyer}
	guard := NewGuard(&stubVerifier{claims: claims}, &stubFinder{})
	next := &nextRecorder{}

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	guard.RequireAuthenticated(next.handler()).ServeHTTP(rec, req)

	if !next.called {
		t.Fatal("handler not reached with a valid credential")
	}
	if !next.ok || next.claims.Email != claims.Email {
		t.Errorf("context claims = %+v, want email %q", next.claims, claims.Email)
	}
}

func TestRequireSeller(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantStatus int
		wantNext   bool
	}{
		{"seller passes", &models.User{Email: "s@x.com", Role: models.RoleSeller}, http.StatusOK, true},
		{"buyer rejected", &models.User{Email: "b@x.com", Role: models.RoleBuyer}, http.StatusForbidden, false},
		{"unknown email rejected", nil, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(&stubVerifier{}, &stubFinder{user: tt.user})
			next := &nextRecorder{}

			req := httptest.NewRequest("POST", "/products?email=s@x.com", nil)
			rec := httptest.NewRecorder()
			guard.RequireSeller(next.handler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if next.called != tt.wantNext {
				t.Errorf("handler called = %v, want %v", next.called, tt.wantNext)
			}
		})
	}
}

func TestRequireSellerStoreFailure(t *testing.T) {
	guard := NewGuard(&stubVerifier{}, &stubFinder{err: errors.New("connection reset")})
	next := &nextRecorder{}

	req := httptest.NewRequest("POST", "/products?email=s@x.com", nil)
	rec := httptest.NewRecorder()
	guard.RequireSeller(next.handler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if next.called {
		t.Error("handler ran after a store failure")
	}
}

func TestRequireOwnerMatch(t *testing.T) {
	claims := &auth.Claims{Email: "b@x.com", Role: models.RoleBuyer}

	tests := []struct {
		name       string
		query      string
		claims     *auth.Claims
		wantStatus int
		wantNext   bool
	}{
		{"owner passes", "b@x.com", claims, http.StatusOK, true},
		{"mismatch rejected", "a@x.com", claims, http.StatusForbidden, false},
		{"missing claims rejected", "b@x.com", nil, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(&stubVerifier{}, &stubFinder{})
			next := &nextRecorder{}

			req := httptest.NewRequest("GET", "/bookings?email="+tt.query, nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()
			guard.RequireOwnerMatch(next.handler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if next.called != tt.wantNext {
				t.Errorf("handler called = %v, want %v", next.called, tt.wantNext)
			}
		})
	}
}
