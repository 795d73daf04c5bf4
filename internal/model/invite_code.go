package model

import "time"

// InviteCode lets a new team member join an existing organization.
type InviteCode struct {
	Code      string     `gorm:"type:varchar(32);primaryKey"               json:"code"`
	OrgID     string     `gorm:"type:uuid;not null"                        json:"org_id"`
	Role      string     `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	CreatedBy string     `gorm:"type:uuid;not null"                        json:"created_by"`
	ExpiresAt time.Time  `gorm:"not null"                                  json:"expires_at"`
	UsedBy    *string    `gorm:"type:uuid"                                 json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"created_at"`
}

// TableName sets the table name.
func (InviteCode) TableName() string { return "invite_codes" }
