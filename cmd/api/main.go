package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/application/stats"
	httpHandler "github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/infrastructure/http"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/infrastructure/mongo"
	jwtutil "github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/jwt"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/middleware"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	log.Println("Starting Pet Grooming Analytics API...")

	mongoConfig := &mongo.Config{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DATABASE", ""),
		Timeout:  30 * time.Second,
	}

	mongoClient, err := mongo.NewClient(mongoConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	if err := mongoClient.Ping(); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")

	database := mongoClient.Database()

	// Read-only repositories
	customerRepo := mongo.NewMongoCustomerRepository(database)
	petRepo := mongo.NewMongoPetRepository(database)
	appointmentRepo := mongo.NewMongoAppointmentRepository(database)
	walkInRepo := mongo.NewMongoWalkInRepository(database)
	sessionRepo := mongo.NewMongoSessionRepository(database)
	serviceRepo := mongo.NewMongoServiceRepository(database)
	paymentRepo := mongo.NewMongoPaymentRepository(database)

	// Aggregation core
	revenue := stats.NewRevenueCalculator(appointmentRepo, walkInRepo)
	customerStats := stats.NewCustomerStatsAggregator(customerRepo, petRepo, appointmentRepo, walkInRepo, sessionRepo, serviceRepo)
	operationalStats := stats.NewOperationalStatsAggregator(appointmentRepo, walkInRepo, revenue)
	schedule := stats.NewScheduleFilter(appointmentRepo, walkInRepo, serviceRepo)
	activity := stats.NewActivityFeedMerger(appointmentRepo, walkInRepo, paymentRepo)

	// HTTP controllers
	customerController := httpHandler.NewHTTPCustomerDashboardController(customerStats)
	operationsController := httpHandler.NewHTTPOperationsDashboardController(operationalStats, schedule, activity)

	jwtManager := jwtutil.NewJWTManager(getEnv("JWT_SECRET", ""), "pet-grooming-api", 24*time.Hour)

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.TimeoutMiddleware(15 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"pet-grooming-analytics"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.JWTAuthMiddleware(jwtManager))

		api.Group(func(g chi.Router) {
			g.Use(middleware.RequireCustomer)
			g.Get("/dashboard/customer", customerController.GetCustomerStats)
		})

		api.Group(func(g chi.Router) {
			g.Use(middleware.RequireStaff)
			g.Get("/dashboard/operations", operationsController.GetOperationalStats)
			g.Get("/schedule/today", operationsController.GetTodaySchedule)
			g.Get("/activity/recent", operationsController.GetRecentActivity)
		})
	})

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
