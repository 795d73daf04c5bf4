package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// DutyRepository is the duty_assignments data-access interface.
//
// Upsert is a single atomic statement against the unique slot index
// (org_id, shift, COALESCE(duty_date, sentinel)): reassigning a slot can
// never race into duplicate rows the way delete-then-insert would.
type DutyRepository interface {
	Upsert(ctx context.Context, duty *model.DutyAssignment) error
	GetSlot(ctx context.Context, orgID, shift string, dutyDate *time.Time) (*model.DutyAssignment, error)
	ListForDate(ctx context.Context, orgID string, date time.Time) ([]model.DutyAssignment, error)
	ListDefaults(ctx context.Context, orgID string) ([]model.DutyAssignment, error)
	DeleteSlot(ctx context.Context, orgID, shift string, dutyDate *time.Time) error
}

type dutyRepo struct {
	db *gorm.DB
}

func NewDutyRepo(db *gorm.DB) DutyRepository {
	return &dutyRepo{db: db}
}

func (r *dutyRepo) Upsert(ctx context.Context, duty *model.DutyAssignment) error {
	if duty.DutyID == "" {
		duty.DutyID = uuid.New().String()
	}
	var dutyDate interface{}
	if duty.DutyDate != nil {
		dutyDate = duty.DutyDate.Format(model.DateOnly)
	}
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO duty_assignments (duty_id, org_id, user_id, shift, duty_date, assigned_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (org_id, shift, COALESCE(duty_date, DATE '0001-01-01'))
		DO UPDATE SET user_id = EXCLUDED.user_id,
		              assigned_by = EXCLUDED.assigned_by,
		              created_at = EXCLUDED.created_at`,
		duty.DutyID, duty.OrgID, duty.UserID, duty.Shift, dutyDate, duty.AssignedBy,
	).Error
}

func (r *dutyRepo) GetSlot(ctx context.Context, orgID, shift string, dutyDate *time.Time) (*model.DutyAssignment, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("org_id = ? AND shift = ?", orgID, shift)
	if dutyDate == nil {
		q = q.Where("duty_date IS NULL")
	} else {
		q = q.Where("duty_date = ?", dutyDate.Format(model.DateOnly))
	}

	var duty model.DutyAssignment
	if err := q.First(&duty).Error; err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *dutyRepo) ListForDate(ctx context.Context, orgID string, date time.Time) ([]model.DutyAssignment, error) {
	var duties []model.DutyAssignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("org_id = ? AND (duty_date IS NULL OR duty_date = ?)", orgID, date.Format(model.DateOnly)).
		Find(&duties).Error
	return duties, err
}

func (r *dutyRepo) ListDefaults(ctx context.Context, orgID string) ([]model.DutyAssignment, error) {
	var duties []model.DutyAssignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("org_id = ? AND duty_date IS NULL", orgID).
		Order("shift ASC").
		Find(&duties).Error
	return duties, err
}

func (r *dutyRepo) DeleteSlot(ctx context.Context, orgID, shift string, dutyDate *time.Time) error {
	q := r.db.WithContext(ctx).
		Where("org_id = ? AND shift = ?", orgID, shift)
	if dutyDate == nil {
		q = q.Where("duty_date IS NULL")
	} else {
		q = q.Where("duty_date = ?", dutyDate.Format(model.DateOnly))
	}
	return q.Delete(&model.DutyAssignment{}).Error
}
