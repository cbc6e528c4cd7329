package migration_1

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMessage struct {
	Timestamp time.Time      `gorm:"index"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
}

type ContactMessage struct {
	Metadata datatypes.JSON `gorm:"type:jsonb"`
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&ChatMessage{}, "Metadata"); err != nil {
		return fmt.Errorf("error adding Metadata column to chat_messages: %w", err)
	}

	if err := db.Migrator().AddColumn(&ContactMessage{}, "Metadata"); err != nil {
		return fmt.Errorf("error adding Metadata column to contact_messages: %w", err)
	}

	if err := db.Migrator().CreateIndex(&ChatMessage{}, "Timestamp"); err != nil {
		return fmt.Errorf("error creating chat_messages timestamp index: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropIndex(&ChatMessage{}, "Timestamp"); err != nil {
		return fmt.Errorf("error dropping chat_messages timestamp index: %w", err)
	}

	if err := db.Migrator().DropColumn(&ChatMessage{}, "Metadata"); err != nil {
		return fmt.Errorf("error dropping Metadata column from chat_messages: %w", err)
	}

	if err := db.Migrator().DropColumn(&ContactMessage{}, "Metadata"); err != nil {
		return fmt.Errorf("error dropping Metadata column from contact_messages: %w", err)
	}

	return nil
}
