package service

import (
	"context"
	"log"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/lockin/internal/error_values"
	"github.com/limbo/lockin/internal/repository"
	"github.com/limbo/lockin/internal/schedule"
	"github.com/limbo/lockin/internal/stats"
	"github.com/limbo/lockin/pkg/dateutil"
	"github.com/limbo/lockin/pkg/entity"
)

// TasksService owns the task collection. Every mutation replaces the
// collection wholesale (copy-on-write) and then notifies the repository;
// a failed save is logged and the in-memory state stays authoritative
// for the session.
type TasksService struct {
	mu    sync.Mutex
	repo  repository.TasksRepositoryI
	tasks []entity.Task
	now   func() time.Time
}

func NewTasksService(ctx context.Context, tasksRepo repository.TasksRepositoryI) *TasksService {
	return NewTasksServiceWithClock(ctx, tasksRepo, time.Now)
}

func NewTasksServiceWithClock(ctx context.Context, tasksRepo repository.TasksRepositoryI, now func() time.Time) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	tasks, err := tasksRepo.Load(ctx)
	if err != nil {
		slog.Warn("loading tasks failed, starting empty", slog.String("error", err.Error()))
		tasks = []entity.Task{}
	}
	return &TasksService{
		repo:  tasksRepo,
		tasks: tasks,
		now:   now,
	}
}

func (ts *TasksService) today() string {
	return dateutil.CanonicalDate(ts.now())
}

// AddTask creates a task assigned to the given dates, defaulting to
// today. Text that trims to empty is rejected.
func (ts *TasksService) AddTask(ctx context.Context, text string, dates []string) (*entity.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errorvalues.ErrEmptyTaskText
	}
	if len(dates) == 0 {
		dates = []string{ts.today()}
	}
	task := entity.Task{
		ID:                uuid.NewString(),
		Text:              text,
		CreatedAt:         ts.now(),
		AssignedDates:     slices.Clone(dates),
		RecurringDays:     []int{},
		CompletionHistory: []entity.CompletionRecord{},
	}
	ts.mu.Lock()
	ts.tasks = append(slices.Clone(ts.tasks), task)
	ts.mu.Unlock()
	ts.persist(ctx)
	return &task, nil
}

// ToggleCompletion flips the task's completion flag and upserts the
// history record for date, so repeated toggles on one date never grow
// the history past a single record.
func (ts *TasksService) ToggleCompletion(ctx context.Context, taskID, date string) error {
	if date == "" {
		date = ts.today()
	}
	ok := ts.update(taskID, func(task entity.Task) entity.Task {
		task.Completed = !task.Completed
		rec := entity.CompletionRecord{
			Date:      date,
			Completed: task.Completed,
			Timestamp: ts.now(),
		}
		history := slices.Clone(task.CompletionHistory)
		idx := slices.IndexFunc(history, func(r entity.CompletionRecord) bool {
			return r.Date == date
		})
		if idx >= 0 {
			history[idx] = rec
		} else {
			history = append(history, rec)
		}
		task.CompletionHistory = history
		return task
	})
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	ts.persist(ctx)
	return nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, taskID string) error {
	ts.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(ts.tasks), func(t entity.Task) bool {
		return t.ID == taskID
	})
	removed := len(next) != len(ts.tasks)
	ts.tasks = next
	ts.mu.Unlock()
	if !removed {
		return errorvalues.ErrTaskNotFound
	}
	ts.persist(ctx)
	return nil
}

// ClearCompleted removes every task whose flat completion flag is set.
func (ts *TasksService) ClearCompleted(ctx context.Context) {
	ts.mu.Lock()
	ts.tasks = slices.DeleteFunc(slices.Clone(ts.tasks), func(t entity.Task) bool {
		return t.Completed
	})
	ts.mu.Unlock()
	ts.persist(ctx)
}

// ResetAll clears every flat completion flag. History is untouched.
func (ts *TasksService) ResetAll(ctx context.Context) {
	ts.mu.Lock()
	next := slices.Clone(ts.tasks)
	for i := range next {
		next[i].Completed = false
	}
	ts.tasks = next
	ts.mu.Unlock()
	ts.persist(ctx)
}

// AssignDate adds date to the task's assignment. Already-assigned dates
// are left alone, which is what makes drag-and-drop onto a day safe to
// repeat.
func (ts *TasksService) AssignDate(ctx context.Context, taskID, date string) error {
	ok := ts.update(taskID, func(task entity.Task) entity.Task {
		if !slices.Contains(task.AssignedDates, date) {
			task.AssignedDates = append(slices.Clone(task.AssignedDates), date)
		}
		return task
	})
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	ts.persist(ctx)
	return nil
}

// ToggleDate removes date from the assignment if present, else adds it.
// Removing the last remaining date substitutes today instead, keeping
// the assignment non-empty.
func (ts *TasksService) ToggleDate(ctx context.Context, taskID, date string) error {
	ok := ts.update(taskID, func(task entity.Task) entity.Task {
		if slices.Contains(task.AssignedDates, date) {
			remaining := slices.DeleteFunc(slices.Clone(task.AssignedDates), func(d string) bool {
				return d == date
			})
			if len(remaining) == 0 {
				remaining = []string{ts.today()}
			}
			task.AssignedDates = remaining
		} else {
			task.AssignedDates = append(slices.Clone(task.AssignedDates), date)
		}
		return task
	})
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	ts.persist(ctx)
	return nil
}

// SetRecurrence replaces the recurrence flag and weekday set atomically.
func (ts *TasksService) SetRecurrence(ctx context.Context, taskID string, isRecurring bool, recurringDays []int) error {
	if recurringDays == nil {
		recurringDays = []int{}
	}
	ok := ts.update(taskID, func(task entity.Task) entity.Task {
		task.IsRecurring = isRecurring
		task.RecurringDays = slices.Clone(recurringDays)
		return task
	})
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	ts.persist(ctx)
	return nil
}

// DuplicateWeek takes every task with dates in the source week and maps
// those dates to the same weekday positions in the target week. Mapped
// dates merge into an existing task with identical text when one exists;
// otherwise the task is cloned with a fresh id, cleared completion and
// empty history. The whole duplication commits as one update.
func (ts *TasksService) DuplicateWeek(ctx context.Context, sourceOffset, targetOffset int) {
	now := ts.now()
	source := dateutil.WeekDates(now, sourceOffset)
	target := dateutil.WeekDates(now, targetOffset)

	ts.mu.Lock()
	existing := len(ts.tasks)
	next := slices.Clone(ts.tasks)
	for _, task := range ts.tasks {
		var mapped []string
		for i, d := range source {
			if slices.Contains(task.AssignedDates, d) {
				mapped = append(mapped, target[i])
			}
		}
		if len(mapped) == 0 {
			continue
		}
		idx := -1
		for i := 0; i < existing; i++ {
			if next[i].Text == task.Text && next[i].ID != task.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			dates := slices.Clone(next[idx].AssignedDates)
			for _, d := range mapped {
				if !slices.Contains(dates, d) {
					dates = append(dates, d)
				}
			}
			next[idx].AssignedDates = dates
			continue
		}
		clone := task
		clone.ID = uuid.NewString()
		clone.Completed = false
		clone.CreatedAt = now
		clone.AssignedDates = mapped
		clone.RecurringDays = slices.Clone(task.RecurringDays)
		clone.CompletionHistory = []entity.CompletionRecord{}
		next = append(next, clone)
	}
	ts.tasks = next
	ts.mu.Unlock()
	ts.persist(ctx)
}

// Tasks returns a snapshot of the collection in order.
func (ts *TasksService) Tasks() []entity.Task {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return slices.Clone(ts.tasks)
}

func (ts *TasksService) TasksActiveOn(date string) []entity.Task {
	if date == "" {
		date = ts.today()
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return schedule.ActiveOn(ts.tasks, date)
}

// ProgressOn reports how many of the date's active tasks carry a set
// completion flag, for the daily progress bar.
func (ts *TasksService) ProgressOn(date string) (completed, total int) {
	for _, task := range ts.TasksActiveOn(date) {
		total++
		if task.Completed {
			completed++
		}
	}
	return completed, total
}

func (ts *TasksService) Statistics() []entity.TaskStats {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return stats.Aggregate(ts.tasks)
}

func (ts *TasksService) WeekOf(offsetWeeks int) []dateutil.WeekDay {
	return dateutil.WeekOf(ts.now(), offsetWeeks)
}

func (ts *TasksService) MonthGrid() dateutil.MonthGridResult {
	return dateutil.MonthGrid(ts.now())
}

// update applies f to the task with the given id over a fresh copy of
// the collection. Caller-visible state changes only if the id exists.
func (ts *TasksService) update(taskID string, f func(entity.Task) entity.Task) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	next := slices.Clone(ts.tasks)
	for i, task := range next {
		if task.ID == taskID {
			next[i] = f(task)
			ts.tasks = next
			return true
		}
	}
	return false
}

func (ts *TasksService) persist(ctx context.Context) {
	ts.mu.Lock()
	snapshot := ts.tasks
	ts.mu.Unlock()
	if err := ts.repo.Save(ctx, snapshot); err != nil {
		slog.Warn("saving tasks failed, in-memory state kept", slog.String("error", err.Error()))
	}
}
