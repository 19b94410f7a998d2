package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"app/ai"
	"app/analytics"
	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	ctx := context.Background()

	store, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer store.Close()
	logger.Info().Msg("connected to the database")

	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to initialize Gemini client")
	}
	defer gemini.Close()

	provider := &analytics.Provider{Source: store}
	assembler := &ai.Assembler{
		Store:      store,
		CharBudget: cfg.ContextCharBudget,
		Log:        logger,
	}
	conversation := ai.NewConversation(assembler, provider, gemini, logger)

	h := &handlers.Handler{
		Data:           provider,
		Movements:      store,
		Chat:           conversation,
		Log:            logger,
		JWTSecret:      []byte(cfg.JWTSecret),
		PasswordHash:   cfg.DashboardPasswordHash,
		MovementWindow: cfg.MovementWindow,
	}

	app := fiber.New()
	app.Use(cors.New())
	routes.SetupRoutes(app, h)

	logger.Info().Str("addr", cfg.ServerAddr).Msg("starting server")
	if err := app.Listen(cfg.ServerAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
