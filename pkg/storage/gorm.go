package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// KVEntry is the GORM model for one backend entry. Values are stored in a
// json column so the original text survives unchanged.
type KVEntry struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"type:json;not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormBackend implements Backend using GORM + Postgres.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend opens the DB and runs auto-migrations.
func NewGormBackend(dsn string) (*GormBackend, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return NewGormBackendWithDB(db)
}

// NewGormBackendWithDB wraps an already opened connection.
func NewGormBackendWithDB(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormBackend{db: db}, nil
}

// Get returns the value stored under key.
func (s *GormBackend) Get(key string) (string, bool, error) {
	var model KVEntry
	if err := s.db.First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return string(model.Value), true, nil
}

// Set upserts value under key. value must be a JSON document.
func (s *GormBackend) Set(key, value string) error {
	model, err := newKVEntry(key, value, time.Now().UTC())
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
}

// Remove deletes key.
func (s *GormBackend) Remove(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}

// Available pings the database.
func (s *GormBackend) Available() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// Close closes the underlying connection pool.
func (s *GormBackend) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newKVEntry(key, value string, now time.Time) (KVEntry, error) {
	if !json.Valid([]byte(value)) {
		return KVEntry{}, fmt.Errorf("value for %s is not valid JSON", key)
	}
	return KVEntry{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: now,
	}, nil
}
