package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/cmd"
	"portfolio-backend/internal/api"
	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/resume"

	"gorm.io/gorm"
)

func createServer(db *gorm.DB, completer llm.Completer, profile *resume.Profile, port int) *http.Server {
	backendService := api.NewBackendService(db, profile)
	chatService := api.NewChatService(chat.NewService(db, completer, profile.SystemPrompt()))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: api.NewRouter(backendService, chatService),
	}
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	profile, err := resume.Load(cfg.ProfileFile)
	if err != nil {
		log.Fatalf("Failed to load resume profile: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	completer, err := llm.New(cfg.LLM())
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}

	slog.Info("starting backend", "port", cfg.Port, "llm_client", completer.Name(), "model", completer.Model(), "owner", profile.Owner)

	server := createServer(db, completer, profile, cfg.Port)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %d", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	log.Println("Server stopped.")
}
