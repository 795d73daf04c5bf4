package dto

// ── auth DTOs ──

// RegisterRequest creates an organization with its owner account.
type RegisterRequest struct {
	OrgName  string `json:"org_name"  binding:"required,min=2,max=100"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required,min=8,max=72"`
}

// JoinRequest creates an account inside an existing organization.
type JoinRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
	FullName   string `json:"full_name"   binding:"required,min=2,max=100"`
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=8,max=72"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshRequest exchanges a refresh token for new tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest updates the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// GenerateInviteRequest creates an invite code.
type GenerateInviteRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=chef staff"`
}

// TokenResponse returns an issued token pair.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

// InviteResponse returns a generated invite code.
type InviteResponse struct {
	Code      string `json:"code"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}
