package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// PaymentStore appends payment records.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
}

// IntentCreator requests a payment intent from the processor.
type IntentCreator interface {
	CreateIntent(price float64) (string, error)
}

// PaymentController handles checkout requests.
type PaymentController struct {
	store   PaymentStore
	intents IntentCreator
}

func NewPaymentController(store PaymentStore, intents IntentCreator) *PaymentController {
	return &PaymentController{store: store, intents: intents}
}

// Create appends a payment record after the client confirms the charge.
func (pc *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	result, err := pc.store.Insert(r.Context(), payment)
	if err != nil {
		http.Error(w, "Error recording payment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// CreateIntent asks the processor for a card payment intent and returns
// the client secret the buyer needs to complete the payment.
func (pc *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	clientSecret, err := pc.intents.CreateIntent(body.Price)
	if err != nil {
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}
