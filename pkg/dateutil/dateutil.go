package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date string format used as the sole key for
// date-based matching. Dates are always rendered from local calendar
// fields, never through a UTC round trip, so an evening date can't shift
// to the next day.
const Layout = "2006-01-02"

func CanonicalDate(t time.Time) string {
	return t.Format(Layout)
}

func Today() string {
	return CanonicalDate(time.Now())
}

func Parse(date string) (time.Time, error) {
	return time.ParseInLocation(Layout, date, time.Local)
}

// Weekday numbers days Monday=1 through Sunday=7.
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// MondayOf returns midnight of the Monday on or before ref, shifted by
// offsetWeeks whole weeks.
func MondayOf(ref time.Time, offsetWeeks int) time.Time {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	return day.AddDate(0, 0, offsetWeeks*7-(Weekday(day)-1))
}

type WeekDay struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	DayNum    int    `json:"day_num"`
	MonthName string `json:"month_name"`
	IsToday   bool   `json:"is_today"`
}

// WeekOf returns the 7 day descriptors of the week containing ref,
// Monday first, shifted by offsetWeeks.
func WeekOf(ref time.Time, offsetWeeks int) []WeekDay {
	monday := MondayOf(ref, offsetWeeks)
	today := CanonicalDate(ref)
	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		date := CanonicalDate(d)
		days = append(days, WeekDay{
			Date:      date,
			Name:      d.Weekday().String()[:3],
			DayNum:    d.Day(),
			MonthName: d.Month().String()[:3],
			IsToday:   date == today,
		})
	}
	return days
}

// WeekDates returns just the 7 canonical date strings of a week,
// Monday first.
func WeekDates(ref time.Time, offsetWeeks int) []string {
	monday := MondayOf(ref, offsetWeeks)
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, CanonicalDate(monday.AddDate(0, 0, i)))
	}
	return dates
}

type MonthDay struct {
	Date           string `json:"date"`
	DayNum         int    `json:"day_num"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
}

type MonthGridResult struct {
	Label string     `json:"label"`
	Days  []MonthDay `json:"days"`
}

// MonthGrid lays out the calendar month containing ref as whole weeks,
// Monday-start, padded with leading and trailing days of the adjacent
// months. At most 6 weeks are emitted; the grid stops early once a week
// ends past the last day of the month. IsToday is relative to ref.
func MonthGrid(ref time.Time) MonthGridResult {
	y, m, _ := ref.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, ref.Location())
	today := CanonicalDate(ref)

	days := make([]MonthDay, 0, 42)
	cur := MondayOf(first, 0)
	for week := 0; week < 6; week++ {
		for i := 0; i < 7; i++ {
			date := CanonicalDate(cur)
			days = append(days, MonthDay{
				Date:           date,
				DayNum:         cur.Day(),
				IsCurrentMonth: cur.Month() == m,
				IsToday:        date == today,
			})
			cur = cur.AddDate(0, 0, 1)
		}
		// cur is the Monday of the next row here
		if cur.After(last) {
			break
		}
	}
	return MonthGridResult{
		Label: fmt.Sprintf("%s %d", m, y),
		Days:  days,
	}
}
