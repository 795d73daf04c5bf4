package model

import "time"

// BaseModel carries the audit timestamps every business table has.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateOnly is the layout for DATE columns exchanged with the API.
const DateOnly = "2006-01-02"
