// routes/routes.go
package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"gamicon-server/controllers"
	"gamicon-server/middleware"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(
	router *mux.Router,
	guard *middleware.Guard,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	categoryController *controllers.CategoryController,
) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Gamicon server is running")
	}).Methods("GET")

	// Category routes
	router.HandleFunc("/categories", categoryController.List).Methods("GET")
	router.HandleFunc("/categories/{id}", productController.ByCategory).Methods("GET")

	// User routes
	router.HandleFunc("/users", userController.Create).Methods("POST")
	router.HandleFunc("/users", userController.Get).Methods("GET")
	router.HandleFunc("/allseller", userController.Sellers).Methods("GET")
	router.Handle("/allbuyer",
		guard.RequireAuthenticated(http.HandlerFunc(userController.Buyers))).Methods("GET")
	router.HandleFunc("/user/{id}", userController.Delete).Methods("DELETE")
	router.Handle("/verify-user",
		guard.RequireAuthenticated(http.HandlerFunc(userController.VerifyUser))).Methods("PATCH")
	router.HandleFunc("/jwt", userController.IssueToken).Methods("GET")

	// Product routes
	router.Handle("/products",
		guard.RequireSeller(http.HandlerFunc(productController.Create))).Methods("POST")
	router.HandleFunc("/products", productController.ListBySeller).Methods("GET")
	router.HandleFunc("/products/{id}", productController.Delete).Methods("DELETE")
	router.HandleFunc("/products-advertise/{id}", productController.Advertise).Methods("PATCH")
	router.HandleFunc("/advertised-products", productController.Advertised).Methods("GET")
	router.HandleFunc("/report/{id}", productController.Report).Methods("PATCH")
	router.HandleFunc("/reported-items", productController.Reported).Methods("GET")
	router.HandleFunc("/update-sale-status", productController.UpdateSaleStatus).Methods("PATCH")

	// Booking routes
	router.Handle("/bookings",
		guard.RequireAuthenticated(http.HandlerFunc(bookingController.Create))).Methods("POST")
	router.Handle("/bookings",
		guard.RequireAuthenticated(guard.RequireOwnerMatch(http.HandlerFunc(bookingController.ListByBuyer)))).Methods("GET")

	// Payment routes
	router.HandleFunc("/payments", paymentController.Create).Methods("POST")
	router.HandleFunc("/create-payment-intent", paymentController.CreateIntent).Methods("POST")
}
