package core

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortContacts orders a copy of the list pinned-first, ties broken by
// locale-aware name comparison ascending. The sort is stable, so equal keys
// keep their insertion order.
func SortContacts(contacts []Contact) []Contact {
	out := append([]Contact(nil), contacts...)
	// Collators are not safe for concurrent use, so one is built per call.
	col := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// UpcomingAppointments returns at most limit appointments dated today or
// later, ascending by date then start time. Records without a date are
// excluded.
func UpcomingAppointments(appointments []Appointment, today Date, limit int) []Appointment {
	out := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date.IsZero() || a.Date.Before(today) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.SameDay(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UpcomingTasks returns at most limit open tasks due today or later,
// ascending by due date.
func UpcomingTasks(tasks []Task, today Date, limit int) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate.IsZero() || t.DueDate.Before(today) || t.Status == TaskCompleted {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
