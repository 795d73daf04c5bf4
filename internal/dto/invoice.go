package dto

// ── vendor & invoice DTOs ──

// CreateVendorRequest adds a supplier.
type CreateVendorRequest struct {
	Name  string  `json:"name"  binding:"required,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateVendorRequest edits a supplier.
type UpdateVendorRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// VendorResponse is the API shape of a supplier.
type VendorResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// InvoiceLineRequest is one free-text line on an invoice write.
type InvoiceLineRequest struct {
	RawText   string  `json:"raw_text"   binding:"required,min=1,max=500"`
	Quantity  float64 `json:"quantity"   binding:"omitempty,gte=0"`
	Unit      string  `json:"unit"       binding:"omitempty,max=20"`
	UnitPrice float64 `json:"unit_price" binding:"omitempty,gte=0"`
}

// CreateInvoiceRequest records a supplier invoice with its lines.
type CreateInvoiceRequest struct {
	VendorID      string               `json:"vendor_id"      binding:"required,uuid"`
	InvoiceNumber string               `json:"invoice_number" binding:"required,min=1,max=100"`
	InvoiceDate   string               `json:"invoice_date"   binding:"required,datetime=2006-01-02"`
	Total         float64              `json:"total"          binding:"omitempty,gte=0"`
	Lines         []InvoiceLineRequest `json:"lines"          binding:"required,min=1,dive"`
}

// ConfirmLineMatchRequest pins an invoice line to a catalog ingredient.
type ConfirmLineMatchRequest struct {
	IngredientID string `json:"ingredient_id" binding:"required,uuid"`
}

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	VendorID      string                `json:"vendor_id"`
	VendorName    string                `json:"vendor_name,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	InvoiceDate   string                `json:"invoice_date"`
	Total         float64               `json:"total"`
	Status        string                `json:"status"`
	Lines         []InvoiceLineResponse `json:"lines"`
	CreatedAt     string                `json:"created_at"`
}

// InvoiceLineResponse is one invoice line with its current match.
type InvoiceLineResponse struct {
	ID                  string   `json:"id"`
	RawText             string   `json:"raw_text"`
	Quantity            float64  `json:"quantity"`
	Unit                string   `json:"unit"`
	UnitPrice           float64  `json:"unit_price"`
	MatchedIngredientID *string  `json:"matched_ingredient_id,omitempty"`
	MatchSimilarity     *float64 `json:"match_similarity,omitempty"`
	MatchType           *string  `json:"match_type,omitempty"`
	Position            int      `json:"position"`
}

// LineMatchCandidatesResponse lists ranked candidates for one line.
type LineMatchCandidatesResponse struct {
	LineID     string                    `json:"line_id"`
	RawText    string                    `json:"raw_text"`
	Candidates []IngredientMatchResponse `json:"candidates"`
}
