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
	"chefos/backend/internal/units"
)

// ── prep-list business errors ──

var (
	ErrPrepTaskNotFound = errors.New("prep task not found")
	ErrBadDate          = errors.New("date must be YYYY-MM-DD")
)

// PrepListService manages per-day prep lists by station.
type PrepListService interface {
	CreateTask(ctx context.Context, orgID string, req *dto.CreatePrepTaskRequest) (*dto.PrepTaskResponse, error)
	ListTasks(ctx context.Context, orgID string, req *dto.PrepListRequest) ([]dto.PrepTaskResponse, error)
	UpdateTask(ctx context.Context, orgID, taskID string, req *dto.UpdatePrepTaskRequest) (*dto.PrepTaskResponse, error)
	CompleteTask(ctx context.Context, orgID, taskID, userID string, completed bool) (*dto.PrepTaskResponse, error)
	DeleteTask(ctx context.Context, orgID, taskID string) error
	CarryOverTasks(ctx context.Context, orgID, fromDate, toDate string) (int, error)
}

type prepListService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPrepListService creates a PrepListService.
func NewPrepListService(repo *repository.Repository, logger *zap.Logger) PrepListService {
	return &prepListService{repo: repo, logger: logger}
}

func (s *prepListService) CreateTask(ctx context.Context, orgID string, req *dto.CreatePrepTaskRequest) (*dto.PrepTaskResponse, error) {
	date, err := time.Parse(model.DateOnly, req.PrepDate)
	if err != nil {
		return nil, ErrBadDate
	}

	task := &model.PrepTask{
		OrgID:    orgID,
		PrepDate: date,
		Station:  req.Station,
		Title:    req.Title,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Position: req.Position,
	}
	if err := s.repo.PrepTask.Create(ctx, task); err != nil {
		s.logger.Error("create prep task failed", zap.Error(err))
		return nil, err
	}
	return toPrepTaskResponse(task), nil
}

func (s *prepListService) ListTasks(ctx context.Context, orgID string, req *dto.PrepListRequest) ([]dto.PrepTaskResponse, error) {
	date, err := time.Parse(model.DateOnly, req.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	tasks, err := s.repo.PrepTask.ListByDate(ctx, orgID, date, req.Station)
	if err != nil {
		s.logger.Error("list prep tasks failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PrepTaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *toPrepTaskResponse(&tasks[i]))
	}
	return result, nil
}

func (s *prepListService) UpdateTask(ctx context.Context, orgID, taskID string, req *dto.UpdatePrepTaskRequest) (*dto.PrepTaskResponse, error) {
	task, err := s.getOrgTask(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Station != nil {
		task.Station = *req.Station
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Quantity != nil {
		task.Quantity = req.Quantity
	}
	if req.Unit != nil {
		task.Unit = req.Unit
	}
	if req.Position != nil {
		task.Position = *req.Position
	}

	if err := s.repo.PrepTask.Update(ctx, task); err != nil {
		s.logger.Error("update prep task failed", zap.Error(err))
		return nil, err
	}
	return toPrepTaskResponse(task), nil
}

func (s *prepListService) CompleteTask(ctx context.Context, orgID, taskID, userID string, completed bool) (*dto.PrepTaskResponse, error) {
	task, err := s.getOrgTask(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if completed {
		now := time.Now()
		task.CompletedAt = &now
		task.CompletedBy = &userID
	} else {
		task.CompletedAt = nil
		task.CompletedBy = nil
	}

	if err := s.repo.PrepTask.Update(ctx, task); err != nil {
		s.logger.Error("complete prep task failed", zap.Error(err))
		return nil, err
	}
	return toPrepTaskResponse(task), nil
}

func (s *prepListService) DeleteTask(ctx context.Context, orgID, taskID string) error {
	if _, err := s.getOrgTask(ctx, orgID, taskID); err != nil {
		return err
	}
	return s.repo.PrepTask.Delete(ctx, orgID, taskID)
}

// CarryOverTasks copies the unfinished tasks of one day onto another,
// typically yesterday's leftovers onto today's list. Returns the number
// of tasks carried.
func (s *prepListService) CarryOverTasks(ctx context.Context, orgID, fromDate, toDate string) (int, error) {
	from, err := time.Parse(model.DateOnly, fromDate)
	if err != nil {
		return 0, ErrBadDate
	}
	to, err := time.Parse(model.DateOnly, toDate)
	if err != nil {
		return 0, ErrBadDate
	}

	tasks, err := s.repo.PrepTask.ListByDate(ctx, orgID, from, "")
	if err != nil {
		return 0, err
	}

	carried := 0
	for i := range tasks {
		if tasks[i].Completed {
			continue
		}
		copyTask := &model.PrepTask{
			OrgID:    orgID,
			PrepDate: to,
			Station:  tasks[i].Station,
			Title:    tasks[i].Title,
			Quantity: tasks[i].Quantity,
			Unit:     tasks[i].Unit,
			Position: tasks[i].Position,
		}
		if err := s.repo.PrepTask.Create(ctx, copyTask); err != nil {
			s.logger.Error("carry over prep task failed", zap.Error(err))
			return carried, err
		}
		carried++
	}
	return carried, nil
}

func (s *prepListService) getOrgTask(ctx context.Context, orgID, taskID string) (*model.PrepTask, error) {
	task, err := s.repo.PrepTask.GetByID(ctx, orgID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrepTaskNotFound
		}
		s.logger.Error("lookup prep task failed", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func toPrepTaskResponse(task *model.PrepTask) *dto.PrepTaskResponse {
	resp := &dto.PrepTaskResponse{
		ID:        task.TaskID,
		PrepDate:  task.PrepDate.Format(model.DateOnly),
		Station:   task.Station,
		Title:     task.Title,
		Quantity:  task.Quantity,
		Unit:      task.Unit,
		Position:  task.Position,
		Completed: task.Completed,
	}
	if task.Quantity != nil && task.Unit != nil {
		resp.Display = units.FormatQuantity(*task.Quantity, *task.Unit)
	}
	if task.CompletedAt != nil {
		ts := task.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &ts
	}
	return resp
}
