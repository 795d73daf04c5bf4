package model

// Vendor is a supplier in the marketplace portal, stored in vendors.
type Vendor struct {
	VendorID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vendor_id"`
	OrgID    string  `gorm:"type:uuid;not null"                             json:"org_id"`
	Name     string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Email    *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone    *string `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Vendor) TableName() string { return "vendors" }
