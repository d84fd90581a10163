package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Migration is a single versioned schema change.
type Migration struct {
	Version string // sortable identifier, e.g. 20240601000001
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord is a row of the tracking table.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// ErrNothingToRevert is returned by Down when no migration has been applied.
var ErrNothingToRevert = errors.New("no migrations to revert")

var (
	globalMigrations = make([]*Migration, 0)
	registryMutex    sync.RWMutex
)

// RegisterMigration adds a migration to the global registry.
func RegisterMigration(migration *Migration) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	globalMigrations = append(globalMigrations, migration)
}

// GetRegisteredMigrations returns a copy of the registry sorted by version.
func GetRegisteredMigrations() []*Migration {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	migrations := make([]*Migration, len(globalMigrations))
	copy(migrations, globalMigrations)
	sortByVersion(migrations)
	return migrations
}

// ResetMigrations clears the global registry (for testing)
func ResetMigrations() {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	globalMigrations = make([]*Migration, 0)
}

func sortByVersion(migrations []*Migration) {
	sort.SliceStable(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
}

// Status pairs a known migration with its applied state.
type Status struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies and reverts migrations against one database.
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

// NewMigrator creates a migrator for the given migrations, or for the global
// registry when none are passed.
func NewMigrator(db *gorm.DB, migrations ...*Migration) *Migrator {
	if len(migrations) == 0 {
		migrations = GetRegisteredMigrations()
	} else {
		migrations = append([]*Migration(nil), migrations...)
		sortByVersion(migrations)
	}
	return &Migrator{db: db, migrations: migrations}
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(&MigrationRecord{})
}

func (m *Migrator) appliedRecords(ctx context.Context) (map[string]MigrationRecord, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var records []MigrationRecord
	if err := m.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	applied := make(map[string]MigrationRecord, len(records))
	for _, record := range records {
		applied[record.Version] = record
	}
	return applied, nil
}

// Pending returns the migrations not applied yet, in version order.
func (m *Migrator) Pending(ctx context.Context) ([]*Migration, error) {
	applied, err := m.appliedRecords(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*Migration
	for _, mr := range m.migrations {
		if _, ok := applied[mr.Version]; !ok {
			pending = append(pending, mr)
		}
	}
	return pending, nil
}

// Up applies every pending migration, each in its own transaction, and
// returns the ones it applied.
func (m *Migrator) Up(ctx context.Context) ([]*Migration, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]*Migration, 0, len(pending))
	for _, mr := range pending {
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mr.Up(tx); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", mr.Name, err)
			}
			record := MigrationRecord{
				Version:   mr.Version,
				Name:      mr.Name,
				AppliedAt: time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", mr.Name, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, mr)
	}
	return applied, nil
}

// Down reverts the most recently applied migration and returns it.
func (m *Migrator) Down(ctx context.Context) (*Migration, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	var record MigrationRecord
	err := m.db.WithContext(ctx).Order("applied_at DESC").Order("version DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNothingToRevert
	}
	if err != nil {
		return nil, err
	}

	var target *Migration
	for _, mr := range m.migrations {
		if mr.Version == record.Version {
			target = mr
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("migration for version %s not found", record.Version)
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", target.Name, err)
		}
		if err := tx.Delete(&record).Error; err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Status lists every known migration with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	applied, err := m.appliedRecords(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(m.migrations))
	for _, mr := range m.migrations {
		st := Status{Version: mr.Version, Name: mr.Name}
		if rec, ok := applied[mr.Version]; ok {
			st.Applied = true
			st.AppliedAt = rec.AppliedAt
		}
		out = append(out, st)
	}
	return out, nil
}

// History returns applied migrations, most recent first.
func (m *Migrator) History(ctx context.Context) ([]MigrationRecord, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	var records []MigrationRecord
	if err := m.db.WithContext(ctx).Order("applied_at DESC").Order("version DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get migration history: %w", err)
	}
	return records, nil
}
