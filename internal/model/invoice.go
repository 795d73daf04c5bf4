package model

import "time"

// Invoice statuses.
const (
	InvoicePending   = "pending"
	InvoiceMatched   = "matched"
	InvoiceProcessed = "processed"
)

// Invoice is a supplier delivery invoice, stored in invoices.
type Invoice struct {
	InvoiceID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`
	OrgID         string    `gorm:"type:uuid;not null"                             json:"org_id"`
	VendorID      string    `gorm:"type:uuid;not null"                             json:"vendor_id"`
	InvoiceNumber string    `gorm:"type:varchar(100);not null"                     json:"invoice_number"`
	InvoiceDate   time.Time `gorm:"type:date;not null"                             json:"invoice_date"`
	Total         float64   `gorm:"type:numeric(12,2);not null;default:0"          json:"total"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	Vendor *Vendor       `gorm:"foreignKey:VendorID;references:VendorID" json:"vendor,omitempty"`
	Lines  []InvoiceLine `gorm:"foreignKey:InvoiceID;references:InvoiceID" json:"lines,omitempty"`
}

// TableName sets the table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceLine is one free-text line from a supplier invoice, stored in
// invoice_lines. RawText is matched against the ingredient catalog; the
// match columns record the winning candidate until a user confirms it.
type InvoiceLine struct {
	LineID              string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"line_id"`
	InvoiceID           string   `gorm:"type:uuid;not null"                             json:"invoice_id"`
	RawText             string   `gorm:"type:varchar(500);not null"                     json:"raw_text"`
	Quantity            float64  `gorm:"type:numeric(12,3);not null;default:0"          json:"quantity"`
	Unit                string   `gorm:"type:varchar(20);not null;default:''"           json:"unit"`
	UnitPrice           float64  `gorm:"type:numeric(12,4);not null;default:0"          json:"unit_price"`
	MatchedIngredientID *string  `gorm:"type:uuid"                                      json:"matched_ingredient_id,omitempty"`
	MatchSimilarity     *float64 `gorm:"type:numeric(4,3)"                              json:"match_similarity,omitempty"`
	MatchType           *string  `gorm:"type:varchar(20)"                               json:"match_type,omitempty"`
	Position            int      `gorm:"not null;default:0"                             json:"position"`

	MatchedIngredient *Ingredient `gorm:"foreignKey:MatchedIngredientID;references:IngredientID" json:"matched_ingredient,omitempty"`
}

// TableName sets the table name.
func (InvoiceLine) TableName() string { return "invoice_lines" }
