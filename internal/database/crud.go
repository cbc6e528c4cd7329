package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

func SaveContactMessage(ctx context.Context, db *gorm.DB, name, email, message string, metadata map[string]string) (*ContactMessage, error) {
	metadataJSON, err := EncodeMetadata(metadata)
	if err != nil {
		return nil, err
	}

	contact := ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Metadata:  metadataJSON,
	}

	if err := db.WithContext(ctx).Create(&contact).Error; err != nil {
		slog.Error("error saving contact message", "error", err)
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return &contact, nil
}

func ListContactMessages(ctx context.Context, db *gorm.DB) ([]ContactMessage, error) {
	var contacts []ContactMessage
	if err := db.WithContext(ctx).Order("timestamp ASC, id ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("could not query contact messages: %w", err)
	}
	return contacts, nil
}
