package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// BookingStore is the slice of the bookings repository the controller needs.
type BookingStore interface {
	Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)
	FindByBuyer(ctx context.Context, email string) ([]models.Booking, error)
}

// BookingController handles booking-related requests. Both routes sit
// behind the authentication guard; listing additionally requires the owner
// match.
type BookingController struct {
	store BookingStore
}

func NewBookingController(store BookingStore) *BookingController {
	return &BookingController{store: store}
}

// Create stores a new booking for the authenticated buyer.
func (bc *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if booking.SalesStatus == "" {
		booking.SalesStatus = models.SalesStatusAvailable
	}

	result, err := bc.store.Insert(r.Context(), booking)
	if err != nil {
		http.Error(w, "Error creating booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// ListByBuyer returns the bookings placed by the email query parameter.
func (bc *BookingController) ListByBuyer(w http.ResponseWriter, r *http.Request) {
	bookings, err := bc.store.FindByBuyer(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		http.Error(w, "Error fetching bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}
