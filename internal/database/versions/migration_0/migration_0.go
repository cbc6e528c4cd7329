package migration_0

import (
	"time"

	"gorm.io/gorm"
)

// Tables as first shipped, before the metadata columns existed.

type ChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:100;index"`
	Role      string `gorm:"size:20"`
	Content   string `gorm:"type:text"`
	Timestamp time.Time
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	Email     string `gorm:"size:100"`
	Message   string `gorm:"type:text"`
	Timestamp time.Time
}

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&ChatMessage{}, &ContactMessage{})
}
