package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/hubbra/go-storefront/app/configs"
	"github.com/hubbra/go-storefront/app/handlers"
	"github.com/hubbra/go-storefront/app/middlewares"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/hubbra/go-storefront/app/services"
	"github.com/hubbra/go-storefront/app/utils/renderer"
	"github.com/hubbra/go-storefront/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := renderer.New()
	validate := validator.New()

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("failed to load session keys: %v", err)
	}
	sessionStore := sessions.NewCookieStore(keys.AuthKey, keys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	addressRepo := repositories.NewAddressRepository(db)

	reviewService := services.NewReviewService(productRepo, reviewRepo)
	orderService := services.NewOrderService(orderRepo)
	tokenService := services.NewTokenService(configs.LoadENV.JWTSecret, 24*time.Hour)

	authHandler := handlers.NewAuthHandler(userRepo, tokenService, rnd, validate)
	userHandler := handlers.NewUserHandler(userRepo, rnd, validate)
	productHandler := handlers.NewProductHandler(productRepo, reviewService, rnd, validate)
	storefrontHandler := handlers.NewStorefrontHandler(productRepo, rnd)
	cartHandler := handlers.NewCartHandler(sessionStore, productRepo, rnd, validate)
	checkoutHandler := handlers.NewCheckoutHandler(sessionStore, addressRepo, rnd, validate)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderService, rnd, validate)
	addressHandler := handlers.NewAddressHandler(addressRepo, rnd, validate)

	auth := middlewares.AuthMiddleware(tokenService, rnd)
	admin := middlewares.AdminMiddleware(rnd)

	protect := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}
	protectAdmin := func(h http.HandlerFunc) http.Handler {
		return auth(admin(h))
	}

	router := mux.NewRouter()

	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.Handle("/api/auth/me", protect(authHandler.Me)).Methods("GET")

	router.HandleFunc("/api/products", productHandler.List).Methods("GET")
	router.HandleFunc("/api/products/{id}", productHandler.Get).Methods("GET")
	router.Handle("/api/products", protectAdmin(productHandler.Create)).Methods("POST")
	router.Handle("/api/products/{id}", protectAdmin(productHandler.Update)).Methods("PATCH")
	router.Handle("/api/products/{id}", protectAdmin(productHandler.Delete)).Methods("DELETE")

	router.HandleFunc("/api/products/{id}/reviews", productHandler.ListReviews).Methods("GET")
	router.Handle("/api/products/{id}/reviews", protect(productHandler.AddReview)).Methods("POST")

	router.Handle("/api/users", protectAdmin(userHandler.List)).Methods("GET")
	router.Handle("/api/users", protectAdmin(userHandler.Create)).Methods("POST")
	router.Handle("/api/users/{id}", protect(userHandler.Get)).Methods("GET")
	router.Handle("/api/users/{id}", protect(userHandler.Update)).Methods("PATCH")
	router.Handle("/api/users/{id}", protectAdmin(userHandler.Delete)).Methods("DELETE")

	router.Handle("/api/addresses", protect(addressHandler.Create)).Methods("POST")
	router.Handle("/api/addresses", protect(addressHandler.List)).Methods("GET")
	router.Handle("/api/addresses/{id}", protect(addressHandler.Get)).Methods("GET")
	router.Handle("/api/addresses/{id}", protect(addressHandler.Update)).Methods("PATCH")
	router.Handle("/api/addresses/{id}", protect(addressHandler.Delete)).Methods("DELETE")

	router.Handle("/api/orders", protect(orderHandler.Create)).Methods("POST")
	router.Handle("/api/orders", protectAdmin(orderHandler.List)).Methods("GET")
	router.Handle("/api/orders/user/{userId}", protect(orderHandler.ListByUser)).Methods("GET")
	router.Handle("/api/orders/{id}", protect(orderHandler.Get)).Methods("GET")
	router.Handle("/api/orders/{id}", protectAdmin(orderHandler.Update)).Methods("PATCH")
	router.Handle("/api/orders/{id}", protectAdmin(orderHandler.Delete)).Methods("DELETE")

	// Browser-facing routes carry the session cookie, so they get CSRF
	// protection on top of it. The token is handed out by GET /storefront/cart.
	storefront := router.PathPrefix("/storefront").Subrouter()
	storefront.Use(csrf.Protect(
		keys.AuthKey,
		csrf.Path("/"),
		csrf.Secure(configs.LoadENV.APP_ENV == "production"),
		csrf.RequestHeader("X-CSRF-Token"),
	))

	storefront.HandleFunc("/products", storefrontHandler.List).Methods("GET")
	storefront.HandleFunc("/products/{id}", storefrontHandler.Get).Methods("GET")

	storefront.HandleFunc("/cart", cartHandler.Get).Methods("GET")
	storefront.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	storefront.HandleFunc("/cart/items", cartHandler.UpdateItem).Methods("PUT")
	storefront.HandleFunc("/cart/items", cartHandler.RemoveItem).Methods("DELETE")
	storefront.HandleFunc("/cart", cartHandler.Clear).Methods("DELETE")

	storefront.Handle("/checkout", protect(checkoutHandler.Get)).Methods("GET")
	storefront.Handle("/checkout/next", protect(checkoutHandler.Next)).Methods("POST")
	storefront.Handle("/checkout/back", protect(checkoutHandler.Back)).Methods("POST")
	storefront.Handle("/checkout/address/select", protect(checkoutHandler.SelectAddress)).Methods("POST")
	storefront.Handle("/checkout/address", protect(checkoutHandler.CreateAddress)).Methods("POST")
	storefront.Handle("/checkout/payment", protect(checkoutHandler.ChoosePayment)).Methods("POST")
	storefront.Handle("/checkout/submit", protect(checkoutHandler.Submit)).Methods("POST")

	return router
}
