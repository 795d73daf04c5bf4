package model

import "time"

// PrepTask is one line on a day's prep list, stored in prep_tasks.
type PrepTask struct {
	TaskID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	OrgID       string     `gorm:"type:uuid;not null"                             json:"org_id"`
	PrepDate    time.Time  `gorm:"type:date;not null"                             json:"prep_date"`
	Station     string     `gorm:"type:varchar(50);not null;default:''"           json:"station"`
	Title       string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Quantity    *float64   `gorm:"type:numeric(12,3)"                             json:"quantity,omitempty"`
	Unit        *string    `gorm:"type:varchar(20)"                               json:"unit,omitempty"`
	Position    int        `gorm:"not null;default:0"                             json:"position"`
	Completed   bool       `gorm:"not null;default:false"                         json:"completed"`
	CompletedBy *string    `gorm:"type:uuid"                                      json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (PrepTask) TableName() string { return "prep_tasks" }
