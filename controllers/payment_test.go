package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

type mockPaymentStore struct {
	inserts []models.Payment
}

func (m *mockPaymentStore) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	m.inserts = append(m.inserts, payment)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

type stubIntentCreator struct {
	prices []float64
	secret string
	err    error
}

func (s *stubIntentCreator) CreateIntent(price float64) (string, error) {
	s.prices = append(s.prices, price)
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

func TestCreatePayment(t *testing.T) {
	store := &mockPaymentStore{}
	pc := NewPaymentController(store, &stubIntentCreator{})

	body := `{"bookingId":"abc123","amount":35,"transactionId":"pi_123"}`
	req := httptest.NewRequest("POST", "/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	pc.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(store.inserts) != 1 || store.inserts[0].TransactionID != "pi_123" {
		t.Errorf("inserts = %+v, want one record for pi_123", store.inserts)
	}
}

func TestCreateIntentHandler(t *testing.T) {
	intents := &stubIntentCreator{secret: "pi_secret"}
	pc := NewPaymentController(&mockPaymentStore{}, intents)

	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"price":49.5}`))
	rec := httptest.NewRecorder()
	pc.CreateIntent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["clientSecret"] != "pi_secret" {
		t.Errorf("clientSecret = %q, want %q", body["clientSecret"], "pi_secret")
	}
	if len(intents.prices) != 1 || intents.prices[0] != 49.5 {
		t.Errorf("prices = %v, want [49.5]", intents.prices)
	}
}

func TestCreateIntentUpstreamFailure(t *testing.T) {
	pc := NewPaymentController(&mockPaymentStore{}, &stubIntentCreator{err: errors.New("upstream 502")})

	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"price":49.5}`))
	rec := httptest.NewRecorder()
	pc.CreateIntent(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
