package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"synthia-server/internal/infrastructure/database/entities"
)

// Migrate brings the schema up to date with the entity definitions.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Company{},
		&entities.Persona{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.ConversationSummary{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
