package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/config"
	"synthia-server/internal/domain/chat"
	companydomain "synthia-server/internal/domain/company"
	conversationdomain "synthia-server/internal/domain/conversation"
	personadomain "synthia-server/internal/domain/persona"
	summarydomain "synthia-server/internal/domain/summary"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/infrastructure/database"
	"synthia-server/internal/infrastructure/llmprovider"
	"synthia-server/internal/infrastructure/logger"
	"synthia-server/internal/infrastructure/observability"
	companyrepo "synthia-server/internal/infrastructure/repository/company"
	conversationrepo "synthia-server/internal/infrastructure/repository/conversation"
	personarepo "synthia-server/internal/infrastructure/repository/persona"
	summaryrepo "synthia-server/internal/infrastructure/repository/summary"
	"synthia-server/internal/interfaces/httpserver"
	"synthia-server/internal/interfaces/httpserver/handlers"
	"synthia-server/internal/interfaces/httpserver/routes"
)

// Application bundles the long-lived pieces main owns.
type Application struct {
	cfg    *config.Config
	server *httpserver.HTTPServer
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	app, err := buildApplication(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build application")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.HTTPPort).
		Msg("starting synthia server")

	if err := app.server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func buildApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	validator, err := auth.NewValidator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	companies := companyrepo.NewPostgresRepository(db)
	personas := personarepo.NewPostgresRepository(db)
	conversations := conversationrepo.NewPostgresRepository(db)
	summaries := summaryrepo.NewPostgresRepository(db)

	completions := llmprovider.NewClient(cfg)

	companyService := companydomain.NewService(companies)
	personaService := personadomain.NewService(personas)
	conversationService := conversationdomain.NewService(conversations, personas)
	chatService := chat.NewService(personas, companies, completions, cfg.ChatMaxTokens)
	summaryService := summarydomain.NewService(summaries, conversations, completions, cfg.SummaryMaxTokens)

	handlerProvider := handlers.NewProvider(
		handlers.NewChatHandler(chatService),
		handlers.NewSummaryHandler(summaryService),
		handlers.NewPersonaHandler(personaService),
		handlers.NewConversationHandler(conversationService),
		handlers.NewCompanyHandler(companyService),
	)
	routesProvider := routes.NewProvider(handlerProvider)

	server := httpserver.NewHTTPServer(cfg, validator, routesProvider, db)
	return &Application{cfg: cfg, server: server}, nil
}

// loadEnvFiles loads .env files when present; missing files are fine.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			if err := godotenv.Load(name); err != nil {
				log.Warn().Err(err).Str("file", name).Msg("failed to load env file")
			}
		}
	}
}
