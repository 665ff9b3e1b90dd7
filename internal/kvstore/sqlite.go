package kvstore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slot struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

type sqliteKV struct {
	db  *gorm.DB
	log *slog.Logger
}

// OpenSQLite opens (or creates) the store file. Past this point the KV never
// returns errors: failed reads degrade to absence and failed writes are
// logged and dropped, matching the last-write-wins, no-error contract of the
// storage layer.
func OpenSQLite(path string, log *slog.Logger) (KV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &sqliteKV{db: db, log: log}, nil
}

func (s *sqliteKV) Get(key string) (string, bool) {
	var row slot
	if err := s.db.Where("key = ?", key).First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("kvstore read failed", "key", key, "err", err)
		}
		return "", false
	}
	return row.Value, true
}

func (s *sqliteKV) Put(key, value string) {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot{Key: key, Value: value}).Error
	if err != nil {
		s.log.Error("kvstore write failed", "key", key, "err", err)
	}
}

func (s *sqliteKV) Delete(key string) {
	if err := s.db.Delete(&slot{}, "key = ?", key).Error; err != nil {
		s.log.Error("kvstore delete failed", "key", key, "err", err)
	}
}
