package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"villa-backend/config"
	"villa-backend/controllers"
	"villa-backend/repositories"
	"villa-backend/routes"
	"villa-backend/services"
	"villa-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	utils.InitLogger()

	if err := config.ConnectDatabase(); err != nil {
		utils.Logger.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	utils.Logger.Info("Database connection established and migrations applied")

	// Repositories
	propertyRepo := repositories.NewPropertyRepository(db)
	roomNumberRepo := repositories.NewRoomNumberRepository(db)

	// Services
	propertyService := services.NewPropertyService(propertyRepo)
	roomNumberService := services.NewRoomNumberService(roomNumberRepo, propertyRepo)

	// Controllers
	propertyController := controllers.NewPropertyController(propertyService)
	roomNumberController := controllers.NewRoomNumberController(roomNumberService)

	router := routes.SetupRouter(propertyController, roomNumberController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Logger.Infof("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	utils.Logger.Info("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatalf("Server forced to shutdown: %v", err)
	}

	utils.Logger.Info("Server stopped gracefully")
}
