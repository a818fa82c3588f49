package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sheetsync/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Prefix is prepended to every option key before it is persisted.
const Prefix = "sheetsync_"

// OptionStore is a JSON-valued key/value store on top of the options table.
type OptionStore struct {
	db *gorm.DB
}

func NewOptionStore(db *gorm.DB) *OptionStore {
	return &OptionStore{db: db}
}

// Get decodes the option stored under key into dest. It reports false when
// the option has never been set.
func (s *OptionStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var option models.Option
	err := s.db.WithContext(ctx).First(&option, "name = ?", Prefix+key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read option %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(option.Value), dest); err != nil {
		return false, fmt.Errorf("failed to decode option %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *OptionStore) Set(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode option %s: %w", key, err)
	}
	option := models.Option{Name: Prefix + key, Value: string(encoded)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&option).Error
	if err != nil {
		return fmt.Errorf("failed to write option %s: %w", key, err)
	}
	return nil
}

func (s *OptionStore) GetString(ctx context.Context, key string) (string, error) {
	var value string
	if _, err := s.Get(ctx, key, &value); err != nil {
		return "", err
	}
	return value, nil
}

func (s *OptionStore) GetBool(ctx context.Context, key string) (bool, error) {
	var value bool
	if _, err := s.Get(ctx, key, &value); err != nil {
		return false, err
	}
	return value, nil
}
