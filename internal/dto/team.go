package dto

// ── team DTOs ──

// UserResponse is the public shape of a team member.
type UserResponse struct {
	ID        string  `json:"id"`
	OrgID     string  `json:"org_id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// UpdateProfileRequest updates the caller's own profile.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"  binding:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// ChangeRoleRequest changes a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=owner chef staff"`
}
