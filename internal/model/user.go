package model

// User roles.
const (
	RoleOwner = "owner"
	RoleChef  = "chef"
	RoleStaff = "staff"
)

// User is a kitchen team member, stored in users.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	OrgID        string  `gorm:"type:uuid;not null"                             json:"org_id"`
	FullName     string  `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email        string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"`
	AvatarURL    *string `gorm:"type:varchar(500)"                              json:"avatar_url,omitempty"`
	BaseModel

	Organization *Organization `gorm:"foreignKey:OrgID;references:OrgID" json:"organization,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
