package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// InviteCodeRepository is the invite_codes data-access interface.
type InviteCodeRepository interface {
	Create(ctx context.Context, code *model.InviteCode) error
	GetByCode(ctx context.Context, code string) (*model.InviteCode, error)
	MarkUsed(ctx context.Context, code, userID string) error
}

type inviteCodeRepo struct {
	db *gorm.DB
}

func NewInviteCodeRepo(db *gorm.DB) InviteCodeRepository {
	return &inviteCodeRepo{db: db}
}

func (r *inviteCodeRepo) Create(ctx context.Context, code *model.InviteCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *inviteCodeRepo) GetByCode(ctx context.Context, code string) (*model.InviteCode, error) {
	var ic model.InviteCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&ic).Error
	if err != nil {
		return nil, err
	}
	return &ic, nil
}

func (r *inviteCodeRepo) MarkUsed(ctx context.Context, code, userID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.InviteCode{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"used_by": userID,
			"used_at": now,
		}).Error
}
