package dto

// ── food-safety DTOs ──

// CreateTemperatureLogRequest records one CCP check.
type CreateTemperatureLogRequest struct {
	CheckType    string   `json:"check_type"    binding:"required,oneof=fridge freezer cook hot_hold"`
	Location     string   `json:"location"      binding:"required,min=1,max=100"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
	Note         *string  `json:"note"          binding:"omitempty,max=500"`
}

// TemperatureLogListRequest filters the log listing.
type TemperatureLogListRequest struct {
	CheckType string `form:"check_type" binding:"omitempty,oneof=fridge freezer cook hot_hold"`
	From      string `form:"from"       binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to"         binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page"       binding:"omitempty,gte=1"`
	PageSize  int    `form:"page_size"  binding:"omitempty,gte=1,lte=100"`
}

// TemperatureLogResponse is the API shape of a temperature check.
type TemperatureLogResponse struct {
	ID           string  `json:"id"`
	CheckType    string  `json:"check_type"`
	Location     string  `json:"location"`
	TemperatureC float64 `json:"temperature_c"`
	Passed       bool    `json:"passed"`
	Note         *string `json:"note,omitempty"`
	RecordedBy   string  `json:"recorded_by"`
	RecorderName string  `json:"recorder_name,omitempty"`
	RecordedAt   string  `json:"recorded_at"`
}

// AssignDutyRequest assigns a shift's food-safety duty. A nil DutyDate
// sets the recurring default; a date sets a one-off override.
type AssignDutyRequest struct {
	Shift    string  `json:"shift"     binding:"required,oneof=am pm"`
	UserID   string  `json:"user_id"   binding:"required,uuid"`
	DutyDate *string `json:"duty_date" binding:"omitempty,datetime=2006-01-02"`
}

// ClearDutyRequest removes a duty slot.
type ClearDutyRequest struct {
	Shift    string  `json:"shift"     binding:"required,oneof=am pm"`
	DutyDate *string `json:"duty_date" binding:"omitempty,datetime=2006-01-02"`
}

// ResolveDutyRequest selects a day to resolve.
type ResolveDutyRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ResolvedDutyResponse is the computed on-duty answer for one shift.
// UserID is null when the slot is unassigned.
type ResolvedDutyResponse struct {
	Shift     string  `json:"shift"`
	UserID    *string `json:"user_id"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsDefault bool    `json:"is_default"`
}

// DutyAssignmentResponse is a raw stored assignment row.
type DutyAssignmentResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name,omitempty"`
	Shift     string  `json:"shift"`
	DutyDate  *string `json:"duty_date,omitempty"`
	CreatedAt string  `json:"created_at"`
}
