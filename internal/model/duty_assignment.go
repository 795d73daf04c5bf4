package model

import "time"

// Food-safety duty shifts.
const (
	ShiftAM = "am"
	ShiftPM = "pm"
)

// DutyAssignment names who runs the food-safety checks for a shift, stored
// in duty_assignments. A nil DutyDate row is the recurring default for the
// shift; a dated row is a one-off override for that single date. The
// uq_duty_assignments_slot index keeps at most one row per (org, shift,
// slot), with NULL dates collapsed onto a sentinel date.
type DutyAssignment struct {
	DutyID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"duty_id"`
	OrgID      string     `gorm:"type:uuid;not null"                             json:"org_id"`
	UserID     string     `gorm:"type:uuid;not null"                             json:"user_id"`
	Shift      string     `gorm:"type:varchar(2);not null"                       json:"shift"`
	DutyDate   *time.Time `gorm:"type:date"                                      json:"duty_date,omitempty"`
	AssignedBy string     `gorm:"type:uuid;not null"                             json:"assigned_by"`
	CreatedAt  time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (DutyAssignment) TableName() string { return "duty_assignments" }

// IsDefault reports whether this is the recurring default row.
func (d *DutyAssignment) IsDefault() bool { return d.DutyDate == nil }
