package schedule

import (
	"slices"

	"github.com/limbo/lockin/pkg/dateutil"
	"github.com/limbo/lockin/pkg/entity"
)

// IsActive reports whether a task appears on the given canonical date:
// either the date is explicitly assigned, or the task recurs on that
// date's weekday. A date that doesn't parse matches nothing.
func IsActive(task entity.Task, date string) bool {
	if slices.Contains(task.AssignedDates, date) {
		return true
	}
	if !task.IsRecurring || len(task.RecurringDays) == 0 {
		return false
	}
	d, err := dateutil.Parse(date)
	if err != nil {
		return false
	}
	return slices.Contains(task.RecurringDays, dateutil.Weekday(d))
}

// ActiveOn filters tasks down to those active on date, preserving
// collection order.
func ActiveOn(tasks []entity.Task, date string) []entity.Task {
	active := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsActive(t, date) {
			active = append(active, t)
		}
	}
	return active
}
