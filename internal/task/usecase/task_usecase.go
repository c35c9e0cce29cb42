package usecase

import (
	"fmt"
	"time"

	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/internal/shared"
	"mailagent-backend/internal/task/domain"
	"mailagent-backend/internal/task/repository"

	"go.uber.org/zap"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, logger *zap.Logger) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (u *taskUsecase) CreateTask(userID, title, description string, dueDate *string, priority string) (*domain.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", shared.ErrValidation)
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    parsePriority(priority),
		Status:      domain.TaskStatusPending,
	}

	if dueDate != nil && *dueDate != "" {
		if t, err := time.Parse(time.RFC3339, *dueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("%w: task", shared.ErrNotFound)
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		statusFilter = &s
	}
	return u.taskRepo.FindByUserID(userID, statusFilter, limit, offset)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else if t, err := time.Parse(time.RFC3339, *updates.DueDate); err == nil {
			task.DueDate = &t
		}
	}
	if updates.Priority != nil {
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		status := domain.TaskStatus(*updates.Status)
		switch status {
		case domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted:
			task.Status = status
		default:
			return nil, fmt.Errorf("%w: invalid status %q", shared.ErrValidation, *updates.Status)
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	if _, err := u.GetTaskByID(userID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Delete(taskID)
}

func (u *taskUsecase) ImportActionItems(userID, emailID string, items []emaildomain.ActionItem) ([]*domain.Task, error) {
	existing, err := u.taskRepo.FindByEmailID(emailID)
	if err != nil {
		return nil, err
	}
	for _, old := range existing {
		if old.UserID != userID {
			continue
		}
		if err := u.taskRepo.Delete(old.ID); err != nil {
			return nil, err
		}
	}

	tasks := make([]*domain.Task, 0, len(items))
	for _, item := range items {
		if item.Task == "" {
			continue
		}
		task := &domain.Task{
			UserID:   userID,
			EmailID:  emailID,
			Title:    item.Task,
			Priority: parsePriority(item.Priority),
			Status:   domain.TaskStatusPending,
		}
		if item.Deadline != nil {
			task.Deadline = *item.Deadline
			if t, err := time.Parse(time.RFC3339, *item.Deadline); err == nil {
				task.DueDate = &t
			}
		}
		if err := u.taskRepo.Create(task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	u.logger.Info("imported action items as tasks",
		zap.String("email_id", emailID), zap.Int("count", len(tasks)))
	return tasks, nil
}

func parsePriority(raw string) domain.Priority {
	switch domain.Priority(raw) {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return domain.Priority(raw)
	default:
		return domain.PriorityMedium
	}
}
