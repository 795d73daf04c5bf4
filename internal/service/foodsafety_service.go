package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// FoodSafetyService records CCP temperature checks.
type FoodSafetyService interface {
	RecordTemperature(ctx context.Context, orgID, userID string, req *dto.CreateTemperatureLogRequest) (*dto.TemperatureLogResponse, error)
	ListTemperatureLogs(ctx context.Context, orgID string, req *dto.TemperatureLogListRequest) ([]dto.TemperatureLogResponse, int64, error)
}

type foodSafetyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFoodSafetyService creates a FoodSafetyService.
func NewFoodSafetyService(repo *repository.Repository, logger *zap.Logger) FoodSafetyService {
	return &foodSafetyService{repo: repo, logger: logger}
}

// TemperaturePasses applies the HACCP thresholds per check type: fridges
// at or below 5°C, freezers at or below -18°C, cooked food at or above
// 75°C core, hot holding at or above 63°C.
func TemperaturePasses(checkType string, tempC float64) bool {
	switch checkType {
	case model.CheckFridge:
		return tempC <= 5
	case model.CheckFreezer:
		return tempC <= -18
	case model.CheckCook:
		return tempC >= 75
	case model.CheckHotHold:
		return tempC >= 63
	default:
		return false
	}
}

func (s *foodSafetyService) RecordTemperature(ctx context.Context, orgID, userID string, req *dto.CreateTemperatureLogRequest) (*dto.TemperatureLogResponse, error) {
	log := &model.TemperatureLog{
		OrgID:        orgID,
		CheckType:    req.CheckType,
		Location:     req.Location,
		TemperatureC: *req.TemperatureC,
		Passed:       TemperaturePasses(req.CheckType, *req.TemperatureC),
		Note:         req.Note,
		RecordedBy:   userID,
		RecordedAt:   time.Now(),
	}
	if err := s.repo.TemperatureLog.Create(ctx, log); err != nil {
		s.logger.Error("record temperature failed", zap.Error(err))
		return nil, err
	}

	if !log.Passed {
		s.logger.Warn("temperature check failed",
			zap.String("org_id", orgID),
			zap.String("check_type", log.CheckType),
			zap.String("location", log.Location),
			zap.Float64("temperature_c", log.TemperatureC))
	}
	return toTemperatureLogResponse(log), nil
}

func (s *foodSafetyService) ListTemperatureLogs(ctx context.Context, orgID string, req *dto.TemperatureLogListRequest) ([]dto.TemperatureLogResponse, int64, error) {
	filter := repository.TemperatureLogFilter{CheckType: req.CheckType}
	if req.From != "" {
		from, err := time.Parse(model.DateOnly, req.From)
		if err != nil {
			return nil, 0, ErrBadDate
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(model.DateOnly, req.To)
		if err != nil {
			return nil, 0, ErrBadDate
		}
		// inclusive end date
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	logs, total, err := s.repo.TemperatureLog.List(ctx, orgID, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list temperature logs failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TemperatureLogResponse, 0, len(logs))
	for i := range logs {
		result = append(result, *toTemperatureLogResponse(&logs[i]))
	}
	return result, total, nil
}

func toTemperatureLogResponse(log *model.TemperatureLog) *dto.TemperatureLogResponse {
	resp := &dto.TemperatureLogResponse{
		ID:           log.LogID,
		CheckType:    log.CheckType,
		Location:     log.Location,
		TemperatureC: log.TemperatureC,
		Passed:       log.Passed,
		Note:         log.Note,
		RecordedBy:   log.RecordedBy,
		RecordedAt:   log.RecordedAt.Format(time.RFC3339),
	}
	if log.Recorder != nil {
		resp.RecorderName = log.Recorder.FullName
	}
	return resp
}
