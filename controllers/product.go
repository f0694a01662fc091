package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// ProductStore is the slice of the products repository the controller needs.
type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error)
	FindBySeller(ctx context.Context, email string) ([]models.Product, error)
	FindAdvertised(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	FindReported(ctx context.Context) ([]models.Product, error)
	SetAdvertised(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	SetReported(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// SaleCompleter runs the sale completion cascade.
type SaleCompleter interface {
	CompleteSale(ctx context.Context, productID string) (*mongo.UpdateResult, error)
}

// ProductController handles listing-related requests.
type ProductController struct {
	store     ProductStore
	completer SaleCompleter
}

func NewProductController(store ProductStore, completer SaleCompleter) *ProductController {
	return &ProductController{store: store, completer: completer}
}

// Create stores a new listing. The seller-role guard runs before this.
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	result, err := pc.store.Insert(r.Context(), product)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// ListBySeller returns the listings posted from the email query parameter.
func (pc *ProductController) ListBySeller(w http.ResponseWriter, r *http.Request) {
	products, err := pc.store.FindBySeller(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// Advertised returns the promoted listings still available for sale.
func (pc *ProductController) Advertised(w http.ResponseWriter, r *http.Request) {
	products, err := pc.store.FindAdvertised(r.Context())
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// ByCategory returns the available listings of one category.
func (pc *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	products, err := pc.store.FindByCategory(r.Context(), params["id"])
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// Reported returns every listing flagged by a report.
func (pc *ProductController) Reported(w http.ResponseWriter, r *http.Request) {
	products, err := pc.store.FindReported(r.Context())
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// Advertise promotes a listing to the home page.
func (pc *ProductController) Advertise(w http.ResponseWriter, r *http.Request) {
	pc.setFlag(w, r, pc.store.SetAdvertised)
}

// Report flags a listing as reported.
func (pc *ProductController) Report(w http.ResponseWriter, r *http.Request) {
	pc.setFlag(w, r, pc.store.SetReported)
}

func (pc *ProductController) setFlag(w http.ResponseWriter, r *http.Request, set func(context.Context, primitive.ObjectID) (*mongo.UpdateResult, error)) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	result, err := set(r.Context(), id)
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Delete removes a listing by id.
func (pc *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	result, err := pc.store.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// UpdateSaleStatus moves a product and every booking referencing it to
// sold.
func (pc *ProductController) UpdateSaleStatus(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")

	result, err := pc.completer.CompleteSale(r.Context(), productID)
	if err != nil {
		if _, hexErr := primitive.ObjectIDFromHex(productID); hexErr != nil {
			http.Error(w, "Invalid product ID", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error updating sale status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
