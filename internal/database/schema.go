package database

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser      string = "user"
	RoleAssistant string = "assistant"
)

type ChatMessage struct {
	ID        uint           `gorm:"primaryKey"`
	SessionID string         `gorm:"size:100;index"`
	Role      string         `gorm:"size:20"` // 'user' or 'assistant'
	Content   string         `gorm:"type:text"`
	Timestamp time.Time      `gorm:"index"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"` // {"model": "...", "client": "..."}
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	Email     string `gorm:"size:100"`
	Message   string `gorm:"type:text"`
	Timestamp time.Time
	Metadata  datatypes.JSON `gorm:"type:jsonb"` // {"user_agent": "...", "request_id": "..."}
}
