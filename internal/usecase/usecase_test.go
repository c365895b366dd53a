package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/techcare/pro360-api/internal/delivery/http/middleware"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := database.NewGormConfig("test")
	cfg.Logger = logger.Discard

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, entity.AutoMigrate(db))
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func adminContext(adminID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.AdminKey, &entity.Admin{ID: adminID})
}

type recordingEvents struct {
	keys []string
	data []interface{}
}

func (r *recordingEvents) Publish(_ context.Context, key string, data interface{}) {
	r.keys = append(r.keys, key)
	r.data = append(r.data, data)
}

func countAuditLogs(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Where("action = ?", action).Count(&count).Error)
	return count
}
