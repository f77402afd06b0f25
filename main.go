package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"realestate-backend/config"
	"realestate-backend/controllers"
	"realestate-backend/models"
	"realestate-backend/routes"
	"realestate-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	cfg := config.Load()

	db, err := config.Open(cfg)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	config.Seed(db)

	authSvc := services.NewAuthService(db, jwtSecret)
	searchSvc := services.NewSearchService(db, cfg)
	propSvc := services.NewPropertyService(db, cfg)
	imageSvc := services.NewImageService(cfg)

	handlers := routes.Handlers{
		Auth:     controllers.NewAuthController(authSvc),
		Search:   controllers.NewSearchController(searchSvc, cfg),
		Blocks:   controllers.NewBlockController(searchSvc, cfg),
		Props:    controllers.NewPropertyController(propSvc, imageSvc),
		Types:    controllers.NewReferenceController(services.NewCatalogService[models.PropertyType](db)),
		Dists:    controllers.NewReferenceController(services.NewCatalogService[models.District](db)),
		Amens:    controllers.NewReferenceController(services.NewCatalogService[models.Amenity](db)),
		Feats:    controllers.NewReferenceController(services.NewCatalogService[models.Feature](db)),
		Settings: controllers.NewSettingsController(cfg),
		AuthSvc:  authSvc,
	}

	router := routes.SetupRouter(handlers)

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
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
