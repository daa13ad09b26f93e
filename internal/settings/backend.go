package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/thatcatcamp/themekit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Backend is durable key/value storage for encoded settings.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// GormBackend stores settings in the settings table and appends every saved
// value to setting_revisions.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend returns a backend over an already migrated database.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row models.Setting
	err := b.db.WithContext(ctx).Where(&models.Setting{Name: key}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(row.Value), true, nil
}

func (b *GormBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.Setting{Name: key, Value: string(data)}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		if err := tx.Create(&models.SettingRevision{Name: key, Value: string(data)}).Error; err != nil {
			return fmt.Errorf("record revision of %s: %w", key, err)
		}
		return nil
	})
}

// History returns up to limit saved values for key, newest first.
func (b *GormBackend) History(ctx context.Context, key string, limit int) ([]models.SettingRevision, error) {
	var revs []models.SettingRevision
	err := b.db.WithContext(ctx).
		Where(&models.SettingRevision{Name: key}).
		Order("id desc").
		Limit(limit).
		Find(&revs).Error
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", key, err)
	}
	return revs, nil
}

// MemoryBackend keeps settings in process memory.
type MemoryBackend struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), d...), true, nil
}

func (b *MemoryBackend) Save(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), data...)
	b.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (b *MemoryBackend) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}
