package migration_1

import (
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend/internal/database/versions/migration_0"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migration.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migration_0.Migration(db))

	return db
}

func TestMigration_AddsMetadataColumns(t *testing.T) {
	db := setupTestDB(t)

	old := migration_0.ChatMessage{
		SessionID: "old-session",
		Role:      "user",
		Content:   "written before metadata existed",
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&old).Error)

	require.NoError(t, Migration(db))

	assert.True(t, db.Migrator().HasColumn(&ChatMessage{}, "Metadata"))
	assert.True(t, db.Migrator().HasColumn(&ContactMessage{}, "Metadata"))
	assert.True(t, db.Migrator().HasIndex(&ChatMessage{}, "Timestamp"))

	var result struct {
		Content  string
		Metadata *string
	}
	err := db.Raw("SELECT content, metadata FROM chat_messages WHERE id = ?", old.ID).Scan(&result).Error
	require.NoError(t, err)

	assert.Equal(t, "written before metadata existed", result.Content)
	assert.Nil(t, result.Metadata)
}
