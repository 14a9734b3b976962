// Package setting provides access to the store_settings key/value table.
package setting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/northsupermart/storefront/internal/db/models"
)

var (
	// ErrSettingNameEmpty is returned when attempting to write a setting with an empty key.
	ErrSettingNameEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// BatchError is returned by SetMany when at least one upsert failed.
// Upserts of the other keys have been applied.
type BatchError struct {
	// Failed lists the keys whose upsert failed, sorted.
	Failed []string
	// Err is the first failure observed.
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d setting(s) failed [%s]: %v", len(e.Failed), strings.Join(e.Failed, ", "), e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// GetAll retrieves all settings from the database.
func GetAll(db *gorm.DB) ([]models.StoreSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.StoreSetting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Map returns all settings as key -> value.
func Map(db *gorm.DB) (map[string]string, error) {
	settings, err := GetAll(db)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// Set inserts the setting or overwrites the value of an existing key
// with a single upsert statement.
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingNameEmpty
	}

	setting := &models.StoreSetting{
		Key:   key,
		Value: value,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(setting)

	return result.Error
}

// SetMany upserts every key of values concurrently and waits for all of
// them. A failing upsert does not stop or roll back the others; the
// returned *BatchError names every failed key.
func SetMany(db *gorm.DB, values map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed []string
	)

	for key, value := range values {
		g.Go(func() error {
			if err := Set(db, key, value); err != nil {
				mu.Lock()
				failed = append(failed, key)
				mu.Unlock()

				return fmt.Errorf("upsert %q: %w", key, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		sort.Strings(failed)

		return &BatchError{Failed: failed, Err: err}
	}

	return nil
}
