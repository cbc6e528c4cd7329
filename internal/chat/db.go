package chat

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveSessionID keeps a caller supplied id and mints a new one otherwise.
func ResolveSessionID(sessionID string) string {
	if sessionID == "" {
		return uuid.NewString()
	}
	return sessionID
}

func GetChatHistory(ctx context.Context, db *gorm.DB, sessionID string) ([]database.ChatMessage, error) {
	var history []database.ChatMessage
	err := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC").
		Find(&history).
		Error
	if err != nil {
		return nil, fmt.Errorf("error loading chat history: %w", err)
	}
	return history, nil
}

// SaveChatTurn writes the user message and its reply as one unit.
func SaveChatTurn(ctx context.Context, db *gorm.DB, sessionID, userContent, assistantContent string, metadata map[string]string) error {
	metadataJSON, err := database.EncodeMetadata(metadata)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	turn := []database.ChatMessage{
		{SessionID: sessionID, Role: database.RoleUser, Content: userContent, Timestamp: now},
		{SessionID: sessionID, Role: database.RoleAssistant, Content: assistantContent, Timestamp: now, Metadata: metadataJSON},
	}

	return db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if err := txn.Create(&turn).Error; err != nil {
			return fmt.Errorf("error saving chat turn: %w", err)
		}
		return nil
	})
}
