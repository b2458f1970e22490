package economy

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store persists named integer counters.
type Store interface {
	// Get returns the stored value for key, or def when it was never set.
	Get(key string, def int) (int, error)
	Set(key string, value int) error
}

// MatchRecorder is implemented by stores that keep a history of runs.
type MatchRecorder interface {
	RecordMatch(rec MatchRecord) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (s *MemoryStore) Get(key string, def int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *MemoryStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Counter is one row of the key/value table.
type Counter struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     int
	UpdatedAt time.Time
}

func (Counter) TableName() string { return "economy_counters" }

// MatchRecord summarizes one finished run.
type MatchRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Kills     int
	Coins     int
	Bonus     int
	Trophies  int
	Duration  time.Duration
	CreatedAt time.Time
}

func (MatchRecord) TableName() string { return "match_records" }

// SQLStore keeps counters and match history in a gorm database.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQLite opens a sqlite database at path, or a shared in-memory one
// when path is empty.
func OpenSQLite(path string) (*SQLStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("economy: open sqlite: %w", err)
	}
	return NewSQLStore(db)
}

func OpenPostgres(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("economy: open postgres: %w", err)
	}
	return NewSQLStore(db)
}

// NewSQLStore migrates the economy tables on db.
func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&Counter{}, &MatchRecord{}); err != nil {
		return nil, fmt.Errorf("economy: migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key string, def int) (int, error) {
	var row Counter
	err := s.db.Where(&Counter{Key: key}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("economy: get %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *SQLStore) Set(key string, value int) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Counter{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("economy: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) RecordMatch(rec MatchRecord) error {
	if err := s.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("economy: record match: %w", err)
	}
	return nil
}

// Matches returns recorded runs, newest first.
func (s *SQLStore) Matches(limit int) ([]MatchRecord, error) {
	var out []MatchRecord
	q := s.db.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("economy: list matches: %w", err)
	}
	return out, nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenStore opens the store named by driver: "memory", "sqlite" or
// "postgres".
func OpenStore(driver, sqlitePath, dsn string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("economy: unknown store driver %q", driver)
	}

	var (
		store *SQLStore
		err   error
	)
	if driver == "sqlite" {
		store, err = OpenSQLite(sqlitePath)
	} else {
		store, err = OpenPostgres(dsn)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
