package syncer

import (
	"context"
	"errors"
	"fmt"

	"sheetsync/internal/models"

	"gorm.io/gorm"
)

// EventLog persists sync events to the database.
type EventLog struct {
	db *gorm.DB
}

func NewEventLog(db *gorm.DB) *EventLog {
	return &EventLog{db: db}
}

func (l *EventLog) Record(ctx context.Context, event *models.SyncEvent) error {
	if err := l.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to record sync event: %w", err)
	}
	return nil
}

var ErrEventNotFound = errors.New("sync event not found")

func (l *EventLog) Get(ctx context.Context, id string) (*models.SyncEvent, error) {
	var event models.SyncEvent
	if err := l.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch sync event %s: %w", id, err)
	}
	return &event, nil
}

type EventFilter struct {
	Page      int
	Limit     int
	Direction string
	Status    string
	ProductID int64
}

// List returns events newest first.
func (l *EventLog) List(ctx context.Context, filter EventFilter) ([]models.SyncEvent, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	query := l.db.WithContext(ctx).Model(&models.SyncEvent{})
	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync events: %w", err)
	}

	var events []models.SyncEvent
	err := query.Order("created_at DESC").Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sync events: %w", err)
	}
	return events, total, nil
}
