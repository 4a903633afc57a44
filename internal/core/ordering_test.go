package core

import (
	"testing"
	"time"
)

func TestSortContactsPinnedFirst(t *testing.T) {
	contacts := []Contact{
		{ID: 1, Name: "Bob"},
		{ID: 2, Name: "Amy", Pinned: true},
		{ID: 3, Name: "Zed", Pinned: true},
		{ID: 4, Name: "Carol"},
	}
	got := SortContacts(contacts)

	wantOrder := []string{"Amy", "Zed", "Bob", "Carol"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("position %d expected %s, got %s", i, name, got[i].Name)
		}
	}

	// The input must stay untouched.
	if contacts[0].Name != "Bob" {
		t.Fatalf("input slice mutated")
	}
}

func TestSortContactsStable(t *testing.T) {
	contacts := []Contact{
		{ID: 1, Name: "Amy"},
		{ID: 2, Name: "Amy"},
	}
	got := SortContacts(contacts)
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("equal names should keep insertion order, got %d then %d", got[0].ID, got[1].ID)
	}
}

func TestUpcomingAppointments(t *testing.T) {
	today := NewDate(2024, time.January, 16)
	appointments := []Appointment{
		{ID: 1, Title: "yesterday", Date: NewDate(2024, time.January, 15), Time: "10:00"},
		{ID: 2, Title: "later today", Date: today, Time: "14:00"},
		{ID: 3, Title: "earlier today", Date: today, Time: "09:00"},
		{ID: 4, Title: "tomorrow", Date: NewDate(2024, time.January, 17), Time: "08:00"},
		{ID: 5, Title: "undated"},
	}

	got := UpcomingAppointments(appointments, today, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 upcoming, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 4 {
		t.Fatalf("expected order [3 2 4], got [%d %d %d]", got[0].ID, got[1].ID, got[2].ID)
	}

	limited := UpcomingAppointments(appointments, today, 2)
	if len(limited) != 2 || limited[1].ID != 2 {
		t.Fatalf("limit 2 expected [3 2], got %v", limited)
	}
}

func TestUpcomingTasksSkipsCompleted(t *testing.T) {
	today := NewDate(2024, time.January, 16)
	tasks := []Task{
		{ID: 1, DueDate: NewDate(2024, time.January, 18), Status: TaskPending},
		{ID: 2, DueDate: NewDate(2024, time.January, 17), Status: TaskCompleted},
		{ID: 3, DueDate: today, Status: TaskInProgress},
		{ID: 4, DueDate: NewDate(2024, time.January, 10), Status: TaskPending},
	}
	got := UpcomingTasks(tasks, today, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming tasks, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected order [3 1], got [%d %d]", got[0].ID, got[1].ID)
	}
}
