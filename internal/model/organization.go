package model

// Organization is a restaurant/kitchen account, stored in organizations.
type Organization struct {
	OrgID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"org_id"`
	Name  string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

// TableName sets the table name.
func (Organization) TableName() string { return "organizations" }
