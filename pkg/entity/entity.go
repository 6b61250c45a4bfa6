package entity

import (
	"time"
)

// CompletionRecord is one per-date completion toggle. A task keeps at most
// one record per date: toggling again the same day overwrites it.
type CompletionRecord struct {
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	// Completed mirrors the most recent toggle regardless of which date it
	// applied to. Daily views read it as a today-scoped convenience;
	// CompletionHistory is the authoritative per-date record.
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	AssignedDates []string  `json:"assignedDates"`
	IsRecurring   bool      `json:"isRecurring"`
	// RecurringDays holds weekday numbers, Monday=1 through Sunday=7.
	RecurringDays     []int              `json:"recurringDays"`
	CompletionHistory []CompletionRecord `json:"completionHistory"`
}

type CheckIn struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Feeling   string    `json:"feeling"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type TaskStats struct {
	TaskID         string             `json:"task_id"`
	Task           string             `json:"task"`
	TotalAssigned  int                `json:"total_assigned"`
	TotalCompleted int                `json:"total_completed"`
	CompletionRate int                `json:"completion_rate"`
	History        []CompletionRecord `json:"history"`
}
