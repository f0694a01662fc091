package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/auth"
	"gamicon-server/models"
)

// UserStore is the slice of the users repository the controller needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// TokenIssuer signs a session token for a registered email.
type TokenIssuer interface {
	Issue(ctx context.Context, email string) (string, error)
}

// SellerVerifier runs the seller verification cascade.
type SellerVerifier interface {
	VerifySeller(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

// Mailer sends the post-verification notice. May be nil when notifications
// are disabled.
type Mailer interface {
	SendVerifiedNotice(toEmail string) error
}

// UserController handles account-related requests.
type UserController struct {
	store    UserStore
	tokens   TokenIssuer
	verifier SellerVerifier
	mailer   Mailer
}

func NewUserController(store UserStore, tokens TokenIssuer, verifier SellerVerifier, mailer Mailer) *UserController {
	return &UserController{store: store, tokens: tokens, verifier: verifier, mailer: mailer}
}

// Create stores an account on first sign-in. The insert is idempotent:
// when the email already has an account the request is a no-op.
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	existing, err := uc.store.FindByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if existing != nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"acknowledged": false})
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	result, err := uc.store.Insert(r.Context(), user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// Get returns the account for the email query parameter, or null when none
// exists. Clients use this to look up a signed-in user's role.
func (uc *UserController) Get(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := uc.store.FindByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// Sellers lists every seller account.
func (uc *UserController) Sellers(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, models.RoleSeller)
}

// Buyers lists every buyer account.
func (uc *UserController) Buyers(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, models.RoleBuyer)
}

func (uc *UserController) listByRole(w http.ResponseWriter, r *http.Request, role string) {
	users, err := uc.store.FindByRole(r.Context(), role)
	if err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// Delete removes an account by id.
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := uc.store.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, "Error deleting user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// VerifyUser marks a seller as verified and fans the flag out to their
// listings, then sends a best-effort notification email.
func (uc *UserController) VerifyUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	result, err := uc.verifier.VerifySeller(r.Context(), email)
	if err != nil {
		http.Error(w, "Error verifying user", http.StatusInternalServerError)
		return
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendVerifiedNotice(email); err != nil {
			log.Printf("verification notice to %s not sent: %v", email, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// IssueToken returns a session token for a known email, 401 otherwise.
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	token, err := uc.tokens.Issue(r.Context(), email)
	if errors.Is(err, auth.ErrUnknownUser) {
		http.Error(w, "No account for this email", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
