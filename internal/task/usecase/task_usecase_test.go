package usecase

import (
	"errors"
	"testing"

	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/internal/shared"
	"mailagent-backend/internal/task/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTaskRepo is an in-memory TaskRepository.
type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *fakeTaskRepo) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) FindByID(id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) FindByUserID(userID string, status *domain.TaskStatus, limit, offset int) ([]*domain.Task, int64, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if status != nil && t.Status != *status {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTaskRepo) FindByEmailID(emailID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.EmailID == emailID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *domain.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(id string) error {
	delete(r.tasks, id)
	return nil
}

func newTestTasks(t *testing.T) (TaskUsecase, *fakeTaskRepo) {
	t.Helper()
	repo := newFakeTaskRepo()
	return NewTaskUsecase(repo, zap.NewNop()), repo
}

func TestCreateTaskDefaults(t *testing.T) {
	uc, _ := newTestTasks(t)

	task, err := uc.CreateTask("u1", "Write report", "", nil, "")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Nil(t, task.DueDate)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	uc, _ := newTestTasks(t)

	_, err := uc.CreateTask("u1", "", "", nil, "high")
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestCreateTaskParsesDueDate(t *testing.T) {
	uc, _ := newTestTasks(t)

	due := "2026-09-01T12:00:00Z"
	task, err := uc.CreateTask("u1", "Pay invoice", "", &due, "high")
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 2026, task.DueDate.Year())
	assert.Equal(t, domain.PriorityHigh, task.Priority)

	// Unparseable dates are dropped rather than rejected.
	bad := "next tuesday"
	task, err = uc.CreateTask("u1", "Vague", "", &bad, "")
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)
}

func TestUpdateTaskStatusValidation(t *testing.T) {
	uc, _ := newTestTasks(t)

	task, err := uc.CreateTask("u1", "Thing", "", nil, "")
	require.NoError(t, err)

	done := string(domain.TaskStatusCompleted)
	updated, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)

	bogus := "abandoned"
	_, err = uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Status: &bogus})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestTaskOwnership(t *testing.T) {
	uc, _ := newTestTasks(t)

	task, err := uc.CreateTask("u1", "Mine", "", nil, "")
	require.NoError(t, err)

	_, err = uc.GetTaskByID("u2", task.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	err = uc.DeleteTask("u2", task.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	require.NoError(t, uc.DeleteTask("u1", task.ID))
}

func TestGetUserTasksStatusFilter(t *testing.T) {
	uc, _ := newTestTasks(t)

	a, err := uc.CreateTask("u1", "A", "", nil, "")
	require.NoError(t, err)
	_, err = uc.CreateTask("u1", "B", "", nil, "")
	require.NoError(t, err)

	done := string(domain.TaskStatusCompleted)
	_, err = uc.UpdateTask("u1", a.ID, TaskUpdateRequest{Status: &done})
	require.NoError(t, err)

	pending := string(domain.TaskStatusPending)
	tasks, total, err := uc.GetUserTasks("u1", &pending, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "B", tasks[0].Title)

	_, total, err = uc.GetUserTasks("u1", nil, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestImportActionItems(t *testing.T) {
	uc, repo := newTestTasks(t)

	deadline := "2026-09-15T00:00:00Z"
	freeform := "by Friday"
	tasks, err := uc.ImportActionItems("u1", "email-1", []emaildomain.ActionItem{
		{Task: "Review report", Deadline: &deadline, Priority: "high"},
		{Task: "Reply to Sarah", Deadline: &freeform},
		{Task: "", Deadline: nil},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2, "empty task text is skipped")

	assert.Equal(t, "Review report", tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	require.NotNil(t, tasks[0].DueDate)

	// Freeform deadlines are kept verbatim without a parsed due date.
	assert.Equal(t, "by Friday", tasks[1].Deadline)
	assert.Nil(t, tasks[1].DueDate)
	assert.Equal(t, domain.PriorityMedium, tasks[1].Priority)

	for _, task := range repo.tasks {
		assert.Equal(t, "email-1", task.EmailID)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	}
}

func TestImportActionItemsReplacesPrevious(t *testing.T) {
	uc, repo := newTestTasks(t)

	_, err := uc.ImportActionItems("u1", "email-1", []emaildomain.ActionItem{
		{Task: "Old extraction"},
	})
	require.NoError(t, err)

	tasks, err := uc.ImportActionItems("u1", "email-1", []emaildomain.ActionItem{
		{Task: "New extraction"},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Len(t, repo.tasks, 1)
	for _, task := range repo.tasks {
		assert.Equal(t, "New extraction", task.Title)
	}
}
