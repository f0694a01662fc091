// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"gamicon-server/auth"
	"gamicon-server/config"
	"gamicon-server/controllers"
	"gamicon-server/middleware"
	"gamicon-server/payments"
	"gamicon-server/repository"
	"gamicon-server/routes"
	"gamicon-server/services"
	"gamicon-server/utils"
)

func main() {
	cfg := config.Load()

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.DBName)

	// Repositories over the shared database handle
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	tokenService := auth.NewTokenService([]byte(cfg.JWTSecret), userRepo)
	cascade := services.NewCascade(userRepo, productRepo, bookingRepo)
	intentService := payments.NewIntentService(cfg.StripeSecretKey)
	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)

	// Controllers
	userController := controllers.NewUserController(userRepo, tokenService, cascade, mailerOrNil(emailService))
	productController := controllers.NewProductController(productRepo, cascade)
	bookingController := controllers.NewBookingController(bookingRepo)
	paymentController := controllers.NewPaymentController(paymentRepo, intentService)
	categoryController := controllers.NewCategoryController(categoryRepo)

	// Guards
	guard := middleware.NewGuard(tokenService, userRepo)

	// Set up the router and register routes
	router := mux.NewRouter()
	routes.RegisterRoutes(router, guard, userController, productController, bookingController, paymentController, categoryController)

	fmt.Printf("Gamicon server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

// mailerOrNil keeps a disabled email service from becoming a non-nil
// interface holding a nil pointer.
func mailerOrNil(es *utils.EmailService) controllers.Mailer {
	if es == nil {
		return nil
	}
	return es
}
