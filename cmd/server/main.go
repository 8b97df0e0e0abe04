package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"braseria/internal/api"
	"braseria/internal/auth"
	"braseria/internal/repository"
	"braseria/internal/service"
	"braseria/internal/venue"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	reservationRepo := repository.NewReservationRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	availabilitySvc := service.NewAvailabilityService(venue.Catalog())
	quoteSvc := service.NewQuoteService()
	stripeSvc := service.NewStripeService(
		os.Getenv("STRIPE_SUCCESS_URL"),
		os.Getenv("STRIPE_CANCEL_URL"),
	)
	senderSvc := service.NewSenderService()
	reservationSvc := service.NewReservationService(reservationRepo, stripeSvc, availabilitySvc, quoteSvc, senderSvc)

	notifySvc := service.NewNotifyService(func() (service.ChannelConfig, error) {
		// Credentials re-read per send so a rotation only needs new env.
		return service.ChannelConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
			ExpiresAt:  time.Now().Add(24 * time.Hour),
		}, nil
	})
	conversationSvc := service.NewConversationService(conversationRepo, reservationSvc, notifySvc)

	jobSvc := service.NewJobService(jobRepo)
	adminSvc := service.NewAdminService(adminRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	userHandler := api.NewUserReservationHandler(reservationSvc)
	whatsappHandler := api.NewWhatsAppWebhookHandler(conversationSvc)
	stripeHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), reservationSvc, stripeSvc, notifySvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/availability", userHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/alternatives", userHandler.FindAlternatives).Methods("POST")
	r.HandleFunc("/api/quote", userHandler.GetQuote).Methods("POST")
	r.HandleFunc("/api/menus", userHandler.GetMenus).Methods("GET")
	r.HandleFunc("/api/reservations", userHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{code}", userHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{code}", userHandler.CancelReservation).Methods("DELETE")
	r.HandleFunc("/api/webhooks/whatsapp", whatsappHandler.HandleInbound).Methods("POST")
	r.HandleFunc("/api/webhooks/stripe", stripeHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/{id}", adminHandler.DeleteReservation).Methods("DELETE")
	admin.HandleFunc("/users", adminAuthHandler.CreateUserAdmin).Methods("POST")

	c := cron.New()
	c.AddFunc("@every 10m", func() {
		if err := jobSvc.CancelExpiredHolds(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("@every 30m", func() {
		if err := jobSvc.CompleteFinishedReservations(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{os.Getenv("CORS_ORIGIN")}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
