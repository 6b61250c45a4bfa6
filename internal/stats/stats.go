package stats

import (
	"math"
	"slices"
	"sort"

	"github.com/limbo/lockin/pkg/entity"
)

// Aggregate walks every task's completion history and produces one
// summary per task: totals, a rounded 0-100 completion rate and the
// ordered history for trend display. The result is sorted descending by
// completed count; ties keep task collection order.
func Aggregate(tasks []entity.Task) []entity.TaskStats {
	result := make([]entity.TaskStats, 0, len(tasks))
	for _, task := range tasks {
		s := entity.TaskStats{
			TaskID:  task.ID,
			Task:    task.Text,
			History: slices.Clone(task.CompletionHistory),
		}
		for _, rec := range task.CompletionHistory {
			s.TotalAssigned++
			if rec.Completed {
				s.TotalCompleted++
			}
		}
		if s.TotalAssigned > 0 {
			s.CompletionRate = int(math.Round(float64(s.TotalCompleted) / float64(s.TotalAssigned) * 100))
		}
		result = append(result, s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCompleted > result[j].TotalCompleted
	})
	return result
}

// Recent returns the last n history records in order, fewer if the
// history is shorter.
func Recent(history []entity.CompletionRecord, n int) []entity.CompletionRecord {
	if n <= 0 || len(history) == 0 {
		return []entity.CompletionRecord{}
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return slices.Clone(history)
}
