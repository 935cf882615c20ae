//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"gorm.io/gorm"

	"synthia-server/internal/config"
	"synthia-server/internal/domain/chat"
	companydomain "synthia-server/internal/domain/company"
	conversationdomain "synthia-server/internal/domain/conversation"
	"synthia-server/internal/domain/llm"
	personadomain "synthia-server/internal/domain/persona"
	summarydomain "synthia-server/internal/domain/summary"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/infrastructure/database"
	"synthia-server/internal/infrastructure/llmprovider"
	companyrepo "synthia-server/internal/infrastructure/repository/company"
	conversationrepo "synthia-server/internal/infrastructure/repository/conversation"
	personarepo "synthia-server/internal/infrastructure/repository/persona"
	summaryrepo "synthia-server/internal/infrastructure/repository/summary"
	"synthia-server/internal/interfaces/httpserver"
	"synthia-server/internal/interfaces/httpserver/handlers"
	"synthia-server/internal/interfaces/httpserver/routes"
)

func provideDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideChatService(personas personadomain.Repository, companies companydomain.Repository, provider llm.Provider, cfg *config.Config) *chat.Service {
	return chat.NewService(personas, companies, provider, cfg.ChatMaxTokens)
}

func provideSummaryService(summaries summarydomain.Repository, conversations conversationdomain.Repository, provider llm.Provider, cfg *config.Config) *summarydomain.Service {
	return summarydomain.NewService(summaries, conversations, provider, cfg.SummaryMaxTokens)
}

func provideApplication(cfg *config.Config, server *httpserver.HTTPServer) *Application {
	return &Application{cfg: cfg, server: server}
}

func InitializeApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	wire.Build(
		provideDatabase,
		auth.NewValidator,

		companyrepo.NewPostgresRepository,
		wire.Bind(new(companydomain.Repository), new(*companyrepo.PostgresRepository)),
		personarepo.NewPostgresRepository,
		wire.Bind(new(personadomain.Repository), new(*personarepo.PostgresRepository)),
		conversationrepo.NewPostgresRepository,
		wire.Bind(new(conversationdomain.Repository), new(*conversationrepo.PostgresRepository)),
		summaryrepo.NewPostgresRepository,
		wire.Bind(new(summarydomain.Repository), new(*summaryrepo.PostgresRepository)),

		llmprovider.NewClient,
		wire.Bind(new(llm.Provider), new(*llmprovider.Client)),

		companydomain.NewService,
		personadomain.NewService,
		conversationdomain.NewService,
		provideChatService,
		provideSummaryService,

		handlers.NewChatHandler,
		wire.Bind(new(handlers.ChatService), new(*chat.Service)),
		handlers.NewSummaryHandler,
		wire.Bind(new(handlers.SummaryService), new(*summarydomain.Service)),
		handlers.NewPersonaHandler,
		wire.Bind(new(handlers.PersonaService), new(*personadomain.Service)),
		handlers.NewConversationHandler,
		wire.Bind(new(handlers.ConversationService), new(*conversationdomain.Service)),
		handlers.NewCompanyHandler,
		wire.Bind(new(handlers.CompanyService), new(*companydomain.Service)),
		handlers.NewProvider,

		routes.NewProvider,
		httpserver.NewHTTPServer,
		provideApplication,
	)
	return nil, nil
}
