package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/lockin/pkg/entity"
)

// taskRecord is a superset of every task shape ever persisted. Legacy
// records may carry a numeric id, a single assignedDate instead of the
// assignedDates array, and may lack the recurrence fields and the
// completion history entirely.
type taskRecord struct {
	ID                json.RawMessage           `json:"id"`
	Text              string                    `json:"text"`
	Completed         bool                      `json:"completed"`
	CreatedAt         time.Time                 `json:"createdAt"`
	AssignedDate      string                    `json:"assignedDate"`
	AssignedDates     []string                  `json:"assignedDates"`
	IsRecurring       *bool                     `json:"isRecurring"`
	RecurringDays     []int                     `json:"recurringDays"`
	CompletionHistory []entity.CompletionRecord `json:"completionHistory"`
}

// migrateTask upgrades one loaded record to the current schema. Running
// it on an already-current record changes nothing. fallbackDate fills an
// empty date assignment, keeping the non-empty invariant from the first
// moment a task exists in memory.
func migrateTask(rec taskRecord, fallbackDate string) entity.Task {
	task := entity.Task{
		ID:                decodeID(rec.ID),
		Text:              rec.Text,
		Completed:         rec.Completed,
		CreatedAt:         rec.CreatedAt,
		AssignedDates:     rec.AssignedDates,
		RecurringDays:     rec.RecurringDays,
		CompletionHistory: rec.CompletionHistory,
	}
	if len(task.AssignedDates) == 0 && rec.AssignedDate != "" {
		task.AssignedDates = []string{rec.AssignedDate}
	}
	if len(task.AssignedDates) == 0 {
		task.AssignedDates = []string{fallbackDate}
	}
	if rec.IsRecurring != nil {
		task.IsRecurring = *rec.IsRecurring
	}
	if task.RecurringDays == nil {
		task.RecurringDays = []int{}
	}
	if task.CompletionHistory == nil {
		task.CompletionHistory = []entity.CompletionRecord{}
	}
	return task
}

// decodeTasks parses a persisted task document and migrates every record.
func decodeTasks(data []byte, fallbackDate string) ([]entity.Task, error) {
	var records []taskRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	tasks := make([]entity.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, migrateTask(rec, fallbackDate))
	}
	return tasks, nil
}

// checkInRecord tolerates legacy numeric ids the same way taskRecord does.
type checkInRecord struct {
	ID        json.RawMessage `json:"id"`
	Date      string          `json:"date"`
	Feeling   string          `json:"feeling"`
	Mood      int             `json:"mood"`
	Note      string          `json:"note"`
	Timestamp time.Time       `json:"timestamp"`
}

func decodeCheckIns(data []byte) ([]entity.CheckIn, error) {
	var records []checkInRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	checkIns := make([]entity.CheckIn, 0, len(records))
	for _, rec := range records {
		checkIns = append(checkIns, entity.CheckIn{
			ID:        decodeID(rec.ID),
			Date:      rec.Date,
			Feeling:   rec.Feeling,
			Mood:      rec.Mood,
			Note:      rec.Note,
			Timestamp: rec.Timestamp,
		})
	}
	return checkIns, nil
}

// decodeID accepts a JSON string or number id; legacy records used
// millisecond timestamps. A missing id gets a fresh one.
func decodeID(raw json.RawMessage) string {
	id := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if id == "" || id == "null" {
		return uuid.NewString()
	}
	return id
}
