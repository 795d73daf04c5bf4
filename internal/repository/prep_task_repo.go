package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// PrepTaskRepository is the prep_tasks data-access interface.
type PrepTaskRepository interface {
	Create(ctx context.Context, task *model.PrepTask) error
	GetByID(ctx context.Context, orgID, id string) (*model.PrepTask, error)
	ListByDate(ctx context.Context, orgID string, date time.Time, station string) ([]model.PrepTask, error)
	Update(ctx context.Context, task *model.PrepTask) error
	Delete(ctx context.Context, orgID, id string) error
}

type prepTaskRepo struct {
	db *gorm.DB
}

func NewPrepTaskRepo(db *gorm.DB) PrepTaskRepository {
	return &prepTaskRepo{db: db}
}

func (r *prepTaskRepo) Create(ctx context.Context, task *model.PrepTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *prepTaskRepo) GetByID(ctx context.Context, orgID, id string) (*model.PrepTask, error) {
	var task model.PrepTask
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND task_id = ?", orgID, id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *prepTaskRepo) ListByDate(ctx context.Context, orgID string, date time.Time, station string) ([]model.PrepTask, error) {
	q := r.db.WithContext(ctx).
		Where("org_id = ? AND prep_date = ?", orgID, date.Format(model.DateOnly))
	if station != "" {
		q = q.Where("station = ?", station)
	}

	var tasks []model.PrepTask
	err := q.Order("station ASC, position ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *prepTaskRepo) Update(ctx context.Context, task *model.PrepTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *prepTaskRepo) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("org_id = ? AND task_id = ?", orgID, id).
		Delete(&model.PrepTask{}).Error
}
