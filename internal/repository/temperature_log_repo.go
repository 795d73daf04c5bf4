package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// TemperatureLogFilter narrows temperature-log listings.
type TemperatureLogFilter struct {
	CheckType string
	From      *time.Time
	To        *time.Time
}

// TemperatureLogRepository is the temperature_logs data-access interface.
type TemperatureLogRepository interface {
	Create(ctx context.Context, log *model.TemperatureLog) error
	List(ctx context.Context, orgID string, filter TemperatureLogFilter, offset, limit int) ([]model.TemperatureLog, int64, error)
}

type temperatureLogRepo struct {
	db *gorm.DB
}

func NewTemperatureLogRepo(db *gorm.DB) TemperatureLogRepository {
	return &temperatureLogRepo{db: db}
}

func (r *temperatureLogRepo) Create(ctx context.Context, log *model.TemperatureLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *temperatureLogRepo) List(ctx context.Context, orgID string, filter TemperatureLogFilter, offset, limit int) ([]model.TemperatureLog, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.TemperatureLog{}).
		Where("org_id = ?", orgID)
	if filter.CheckType != "" {
		q = q.Where("check_type = ?", filter.CheckType)
	}
	if filter.From != nil {
		q = q.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("recorded_at < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.TemperatureLog
	err := q.Preload("Recorder").
		Order("recorded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
