package service

import (
	"context"

	"github.com/limbo/lockin/pkg/dateutil"
	"github.com/limbo/lockin/pkg/entity"
)

// TaskStoreI is the presentation-facing contract for everything task
// shaped: the UI renders query results and forwards user intents as
// calls into these operations, owning no state of its own.
type TaskStoreI interface {
	AddTask(ctx context.Context, text string, dates []string) (*entity.Task, error)
	ToggleCompletion(ctx context.Context, taskID, date string) error
	DeleteTask(ctx context.Context, taskID string) error
	ClearCompleted(ctx context.Context)
	ResetAll(ctx context.Context)
	AssignDate(ctx context.Context, taskID, date string) error
	ToggleDate(ctx context.Context, taskID, date string) error
	SetRecurrence(ctx context.Context, taskID string, isRecurring bool, recurringDays []int) error
	DuplicateWeek(ctx context.Context, sourceOffset, targetOffset int)
	Tasks() []entity.Task
	TasksActiveOn(date string) []entity.Task
	ProgressOn(date string) (completed, total int)
	Statistics() []entity.TaskStats
	WeekOf(offsetWeeks int) []dateutil.WeekDay
	MonthGrid() dateutil.MonthGridResult
}

type CheckInStoreI interface {
	SaveCheckIn(ctx context.Context, date string, req *CheckInRequest) (*entity.CheckIn, error)
	CheckInFor(date string) (*entity.CheckIn, error)
	CheckIns() []entity.CheckIn
}
