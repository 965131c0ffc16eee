package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one key-value row in the kv_entries table.
type Entry struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string `gorm:"type:text"`
}

// TableName overrides the GORM default pluralization.
func (Entry) TableName() string { return "kv_entries" }

// GormKV is a KV backend over a GORM connection (SQLite or MySQL).
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps db as a KV backend, migrating the kv_entries table.
func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("store: migrate kv_entries: %w", err)
	}
	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(key string) (string, bool, error) {
	var e Entry
	err := g.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (g *GormKV) Set(key, value string) error {
	e := Entry{Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (g *GormKV) Delete(key string) error {
	if err := g.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

func (g *GormKV) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
