package dto

// ── prep-list DTOs ──

// CreatePrepTaskRequest adds a task to a day's prep list.
type CreatePrepTaskRequest struct {
	PrepDate string   `json:"prep_date" binding:"required,datetime=2006-01-02"`
	Station  string   `json:"station"   binding:"omitempty,max=50"`
	Title    string   `json:"title"     binding:"required,min=1,max=200"`
	Quantity *float64 `json:"quantity"  binding:"omitempty,gt=0"`
	Unit     *string  `json:"unit"      binding:"omitempty,max=20"`
	Position int      `json:"position"  binding:"omitempty,gte=0"`
}

// UpdatePrepTaskRequest edits a prep task.
type UpdatePrepTaskRequest struct {
	Station  *string  `json:"station"  binding:"omitempty,max=50"`
	Title    *string  `json:"title"    binding:"omitempty,min=1,max=200"`
	Quantity *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit     *string  `json:"unit"     binding:"omitempty,max=20"`
	Position *int     `json:"position" binding:"omitempty,gte=0"`
}

// PrepListRequest selects a day's list.
type PrepListRequest struct {
	Date    string `form:"date"    binding:"required,datetime=2006-01-02"`
	Station string `form:"station" binding:"omitempty,max=50"`
}

// PrepTaskResponse is the API shape of a prep task.
type PrepTaskResponse struct {
	ID          string   `json:"id"`
	PrepDate    string   `json:"prep_date"`
	Station     string   `json:"station"`
	Title       string   `json:"title"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Display     string   `json:"display,omitempty"`
	Position    int      `json:"position"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completed_at,omitempty"`
}
