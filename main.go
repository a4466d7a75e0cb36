package main

import (
	"log"

	api "ytnote/cmd/api"
	noteDelivery "ytnote/internal/note/delivery"
	noteRepo "ytnote/internal/note/repository"
	noteUsecase "ytnote/internal/note/usecase"
	"ytnote/pkg/ai"
	"ytnote/pkg/config"
	"ytnote/pkg/database"
	"ytnote/pkg/youtube"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repository (dependency injection)
	repo := noteRepo.NewGormNoteRepository(db)

	// Initialize external clients
	transcriptClient := youtube.NewClient()
	summarizer, err := ai.NewSummarizer(ai.Config{
		Provider:          ai.ProviderType(cfg.AIProvider),
		OpenRouterAPIKey:  cfg.OpenRouterAPIKey,
		OpenRouterBaseURL: cfg.OpenRouterBaseURL,
		OpenRouterModel:   cfg.OpenRouterModel,
		OllamaBaseURL:     cfg.OllamaBaseURL,
		OllamaModel:       cfg.OllamaModel,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI service:", err)
	}
	log.Printf("AI service initialized with provider: %s", cfg.AIProvider)

	// Initialize use case and HTTP handler
	uc := noteUsecase.NewNoteUsecase(transcriptClient, summarizer, repo)
	handler := noteDelivery.NewNoteHandler(uc)

	// Start server
	r := api.SetupRouter(handler)
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
