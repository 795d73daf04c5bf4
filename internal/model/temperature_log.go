package model

import "time"

// Temperature check types (CCPs).
const (
	CheckFridge  = "fridge"
	CheckFreezer = "freezer"
	CheckCook    = "cook"
	CheckHotHold = "hot_hold"
)

// TemperatureLog is one recorded food-safety check, stored in temperature_logs.
// Passed is derived at write time from the check type's thresholds.
type TemperatureLog struct {
	LogID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	OrgID        string    `gorm:"type:uuid;not null"                             json:"org_id"`
	CheckType    string    `gorm:"type:varchar(20);not null"                      json:"check_type"`
	Location     string    `gorm:"type:varchar(100);not null"                     json:"location"`
	TemperatureC float64   `gorm:"type:numeric(6,2);not null"                     json:"temperature_c"`
	Passed       bool      `gorm:"not null"                                       json:"passed"`
	Note         *string   `gorm:"type:varchar(500)"                              json:"note,omitempty"`
	RecordedBy   string    `gorm:"type:uuid;not null"                             json:"recorded_by"`
	RecordedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"recorded_at"`

	Recorder *User `gorm:"foreignKey:RecordedBy;references:UserID" json:"recorder,omitempty"`
}

// TableName sets the table name.
func (TemperatureLog) TableName() string { return "temperature_logs" }
