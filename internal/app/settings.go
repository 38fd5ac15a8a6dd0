package app

import (
	"sync"

	"github.com/spf13/cast"
	"github.com/suryatech/solarportal/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsManager caches the portal_setting table and exposes typed
// getters. The cache is refreshed periodically by a cron job.
type SettingsManager struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache map[string]string
}

func NewSettingsManager(db *gorm.DB) *SettingsManager {
	m := &SettingsManager{db: db, cache: map[string]string{}}
	m.Reload()
	return m
}

// Reload re-reads all settings from the database
func (m *SettingsManager) Reload() {
	var rows []domain.SiteSetting
	if err := m.db.Find(&rows).Error; err != nil {
		zap.L().Error("failed to load site settings", zap.Error(err))
		return
	}
	next := make(map[string]string, len(rows))
	for _, row := range rows {
		next[row.Key] = row.Value
	}
	m.mu.Lock()
	m.cache = next
	m.mu.Unlock()
}

func (m *SettingsManager) GetString(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache[key]
}

func (m *SettingsManager) GetInt64(key string) int64 {
	return cast.ToInt64(m.GetString(key))
}

func (m *SettingsManager) GetBool(key string) bool {
	return cast.ToBool(m.GetString(key))
}
