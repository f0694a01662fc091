package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"gamicon-server/models"
)

// CategoryStore reads the categories reference data.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

// CategoryController serves the category reference data.
type CategoryController struct {
	store CategoryStore
}

func NewCategoryController(store CategoryStore) *CategoryController {
	return &CategoryController{store: store}
}

// List returns every category.
func (cc *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.store.FindAll(r.Context())
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
