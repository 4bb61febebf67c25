// Package store persists meta progression and run history through gorm
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/stardrift/content"
)

// Store is the persistence collaborator of the host
type Store interface {
	Load(ctx context.Context) SaveState
	Save(ctx context.Context, s SaveState) error
	RecordRun(ctx context.Context, r RunRecord) error
	Runs(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}

// Config selects the backend
// An empty DSN, or a postgres connection that fails, selects sqlite at Path
type Config struct {
	DSN  string
	Path string
}

const saveRowID = 1

// GormStore implements Store on postgres or sqlite
type GormStore struct {
	db      *gorm.DB
	cat     *content.Catalog
	log     zerolog.Logger
	isLocal bool
}

var _ Store = (*GormStore)(nil)

// Open connects, migrates and returns a ready store
func Open(cfg Config, cat *content.Catalog, log zerolog.Logger) (*GormStore, error) {
	s := &GormStore{cat: cat, log: log}

	var err error
	if cfg.DSN != "" {
		s.db, err = openPostgres(cfg.DSN)
		if err == nil {
			err = ping(s.db)
		}
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Postgres DB, trying SQLite")
			s.db = nil
		}
	}
	if s.db == nil {
		s.isLocal = true
		s.db, err = openSQLite(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", cfg.Path, err)
		}
		log.Info().Str("path", cfg.Path).Msg("Using local SQLite DB")
	} else {
		log.Info().Msg("Connected to Postgres DB")
	}

	if err := s.db.AutoMigrate(&saveRow{}, &runRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// openSQLite opens path, or a shared in-memory database when path is empty
func openSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return db, ping(db)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Ping()
}

// IsLocal reports whether the store fell back to sqlite
func (s *GormStore) IsLocal() bool { return s.isLocal }

// Load returns the persisted state merged onto defaults
// Absent or corrupt saves degrade to the default state
func (s *GormStore) Load(ctx context.Context) SaveState {
	var row saveRow
	err := s.db.WithContext(ctx).First(&row, saveRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Info().Msg("No save found, starting fresh")
		return DefaultState(s.cat)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read save, using defaults")
		return DefaultState(s.cat)
	}

	state, err := Merge(s.cat, row.Data)
	if err != nil {
		s.log.Warn().Err(err).Msg("Corrupt save, using defaults")
	}
	return state
}

// Save upserts the single save document
func (s *GormStore) Save(ctx context.Context, state SaveState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	row := saveRow{ID: saveRowID, Data: data, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// RecordRun appends a settled run to the history
func (s *GormStore) RecordRun(ctx context.Context, r RunRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	loadout, err := json.Marshal(r.Loadout)
	if err != nil {
		return fmt.Errorf("encode loadout: %w", err)
	}
	row := runRow{
		ID:      r.ID.String(),
		Zone:    string(r.Zone),
		Time:    r.Time,
		Kills:   r.Kills,
		Level:   r.Level,
		Earned:  r.Earned,
		Died:    r.Died,
		Loadout: loadout,
		EndedAt: r.EndedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record run %s: %w", r.ID, err)
	}
	return nil
}

// Runs returns the most recent runs, newest first
func (s *GormStore) Runs(ctx context.Context, limit int) ([]RunRecord, error) {
	var rows []runRow
	q := s.db.WithContext(ctx).Order("ended_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	out := make([]RunRecord, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			s.log.Warn().Str("id", row.ID).Msg("Skipping run with malformed id")
			continue
		}
		rec := RunRecord{
			ID:      id,
			Zone:    content.ZoneID(row.Zone),
			Time:    row.Time,
			Kills:   row.Kills,
			Level:   row.Level,
			Earned:  row.Earned,
			Died:    row.Died,
			EndedAt: row.EndedAt,
		}
		if len(row.Loadout) > 0 {
			if err := json.Unmarshal(row.Loadout, &rec.Loadout); err != nil {
				s.log.Warn().Err(err).Str("id", row.ID).Msg("Dropping malformed loadout")
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
