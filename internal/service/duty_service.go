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

// ── duty business errors ──

var (
	ErrDutySlotNotFound = errors.New("duty slot not found")
	ErrBadShift         = errors.New("shift must be am or pm")
)

// DutyService resolves and manages food-safety duty assignments. A slot
// is (shift, date); a nil date is the recurring default. Resolution for a
// date checks the dated override first and falls back to the default.
type DutyService interface {
	ResolveDuty(ctx context.Context, orgID, shift string, date time.Time) (*dto.ResolvedDutyResponse, error)
	ResolveDay(ctx context.Context, orgID string, date time.Time) ([]dto.ResolvedDutyResponse, error)
	AssignDuty(ctx context.Context, orgID, assignedBy string, req *dto.AssignDutyRequest) (*dto.DutyAssignmentResponse, error)
	ClearDuty(ctx context.Context, orgID string, req *dto.ClearDutyRequest) error
	DefaultDuties(ctx context.Context, orgID string) ([]dto.DutyAssignmentResponse, error)
	IsOnDuty(ctx context.Context, orgID, userID, shift string, date time.Time) (bool, error)
}

type dutyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDutyService creates a DutyService.
func NewDutyService(repo *repository.Repository, logger *zap.Logger) DutyService {
	return &dutyService{repo: repo, logger: logger}
}

// ResolveDuty answers "who is on duty for this shift on this date". The
// dated override wins over the recurring default; with neither present
// the slot resolves to unassigned (nil UserID). Store failures are
// returned as errors, never silently reported as unassigned.
func (s *dutyService) ResolveDuty(ctx context.Context, orgID, shift string, date time.Time) (*dto.ResolvedDutyResponse, error) {
	if shift != model.ShiftAM && shift != model.ShiftPM {
		return nil, ErrBadShift
	}

	override, err := s.repo.Duty.GetSlot(ctx, orgID, shift, &date)
	if err == nil {
		return resolvedFromAssignment(override, false), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("resolve duty override failed", zap.Error(err))
		return nil, err
	}

	def, err := s.repo.Duty.GetSlot(ctx, orgID, shift, nil)
	if err == nil {
		return resolvedFromAssignment(def, true), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("resolve duty default failed", zap.Error(err))
		return nil, err
	}

	return &dto.ResolvedDutyResponse{Shift: shift}, nil
}

// ResolveDay resolves both shifts for a date in am, pm order.
func (s *dutyService) ResolveDay(ctx context.Context, orgID string, date time.Time) ([]dto.ResolvedDutyResponse, error) {
	result := make([]dto.ResolvedDutyResponse, 0, 2)
	for _, shift := range []string{model.ShiftAM, model.ShiftPM} {
		resolved, err := s.ResolveDuty(ctx, orgID, shift, date)
		if err != nil {
			return nil, err
		}
		result = append(result, *resolved)
	}
	return result, nil
}

// AssignDuty upserts a duty slot atomically. Assigning a dated override
// leaves the recurring default untouched, and vice versa.
func (s *dutyService) AssignDuty(ctx context.Context, orgID, assignedBy string, req *dto.AssignDutyRequest) (*dto.DutyAssignmentResponse, error) {
	if _, err := s.getOrgMemberForDuty(ctx, orgID, req.UserID); err != nil {
		return nil, err
	}

	dutyDate, err := parseDutyDate(req.DutyDate)
	if err != nil {
		return nil, err
	}

	duty := &model.DutyAssignment{
		OrgID:      orgID,
		UserID:     req.UserID,
		Shift:      req.Shift,
		DutyDate:   dutyDate,
		AssignedBy: assignedBy,
	}
	if err := s.repo.Duty.Upsert(ctx, duty); err != nil {
		s.logger.Error("assign duty failed", zap.Error(err))
		return nil, err
	}

	stored, err := s.repo.Duty.GetSlot(ctx, orgID, req.Shift, dutyDate)
	if err != nil {
		return nil, err
	}
	return toDutyAssignmentResponse(stored), nil
}

func (s *dutyService) ClearDuty(ctx context.Context, orgID string, req *dto.ClearDutyRequest) error {
	dutyDate, err := parseDutyDate(req.DutyDate)
	if err != nil {
		return err
	}

	if _, err := s.repo.Duty.GetSlot(ctx, orgID, req.Shift, dutyDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDutySlotNotFound
		}
		return err
	}
	return s.repo.Duty.DeleteSlot(ctx, orgID, req.Shift, dutyDate)
}

func (s *dutyService) DefaultDuties(ctx context.Context, orgID string) ([]dto.DutyAssignmentResponse, error) {
	duties, err := s.repo.Duty.ListDefaults(ctx, orgID)
	if err != nil {
		s.logger.Error("list default duties failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DutyAssignmentResponse, 0, len(duties))
	for i := range duties {
		result = append(result, *toDutyAssignmentResponse(&duties[i]))
	}
	return result, nil
}

// IsOnDuty reports whether the user is the resolved assignee for the
// shift on the date.
func (s *dutyService) IsOnDuty(ctx context.Context, orgID, userID, shift string, date time.Time) (bool, error) {
	resolved, err := s.ResolveDuty(ctx, orgID, shift, date)
	if err != nil {
		return false, err
	}
	return resolved.UserID != nil && *resolved.UserID == userID, nil
}

func (s *dutyService) getOrgMemberForDuty(ctx context.Context, orgID, userID string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if user.OrgID != orgID {
		return nil, ErrMemberNotFound
	}
	return user, nil
}

func parseDutyDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := time.Parse(model.DateOnly, *raw)
	if err != nil {
		return nil, ErrBadDate
	}
	return &d, nil
}

func resolvedFromAssignment(duty *model.DutyAssignment, isDefault bool) *dto.ResolvedDutyResponse {
	resp := &dto.ResolvedDutyResponse{
		Shift:     duty.Shift,
		UserID:    &duty.UserID,
		IsDefault: isDefault,
	}
	if duty.User != nil {
		resp.FullName = &duty.User.FullName
		resp.AvatarURL = duty.User.AvatarURL
	}
	return resp
}

func toDutyAssignmentResponse(duty *model.DutyAssignment) *dto.DutyAssignmentResponse {
	resp := &dto.DutyAssignmentResponse{
		ID:        duty.DutyID,
		UserID:    duty.UserID,
		Shift:     duty.Shift,
		CreatedAt: duty.CreatedAt.Format(time.RFC3339),
	}
	if duty.DutyDate != nil {
		d := duty.DutyDate.Format(model.DateOnly)
		resp.DutyDate = &d
	}
	if duty.User != nil {
		resp.FullName = duty.User.FullName
	}
	return resp
}
