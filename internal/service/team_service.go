package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── team business errors ──

var (
	ErrMemberNotFound = errors.New("team member not found")
	ErrLastOwner      = errors.New("an organization must keep at least one owner")
)

// TeamService manages the members of an organization.
type TeamService interface {
	ListMembers(ctx context.Context, orgID string) ([]dto.UserResponse, error)
	GetMember(ctx context.Context, orgID, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, orgID, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangeRole(ctx context.Context, orgID, userID string, req *dto.ChangeRoleRequest) (*dto.UserResponse, error)
	RemoveMember(ctx context.Context, orgID, userID string) error
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService creates a TeamService.
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) ListMembers(ctx context.Context, orgID string) ([]dto.UserResponse, error) {
	users, err := s.repo.User.ListByOrg(ctx, orgID)
	if err != nil {
		s.logger.Error("list members failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

func (s *teamService) GetMember(ctx context.Context, orgID, userID string) (*dto.UserResponse, error) {
	user, err := s.getOrgMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *teamService) UpdateProfile(ctx context.Context, orgID, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.getOrgMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update profile failed", zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *teamService) ChangeRole(ctx context.Context, orgID, userID string, req *dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	user, err := s.getOrgMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleOwner && req.Role != model.RoleOwner {
		if err := s.ensureAnotherOwner(ctx, orgID, userID); err != nil {
			return nil, err
		}
	}

	user.Role = req.Role
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("change role failed", zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *teamService) RemoveMember(ctx context.Context, orgID, userID string) error {
	user, err := s.getOrgMember(ctx, orgID, userID)
	if err != nil {
		return err
	}

	if user.Role == model.RoleOwner {
		if err := s.ensureAnotherOwner(ctx, orgID, userID); err != nil {
			return err
		}
	}

	return s.repo.User.Delete(ctx, userID)
}

func (s *teamService) getOrgMember(ctx context.Context, orgID, userID string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("lookup member failed", zap.Error(err))
		return nil, err
	}
	if user.OrgID != orgID {
		return nil, ErrMemberNotFound
	}
	return user, nil
}

func (s *teamService) ensureAnotherOwner(ctx context.Context, orgID, excludeUserID string) error {
	users, err := s.repo.User.ListByOrg(ctx, orgID)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].UserID != excludeUserID && users[i].Role == model.RoleOwner {
			return nil
		}
	}
	return ErrLastOwner
}

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.UserID,
		OrgID:     user.OrgID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
