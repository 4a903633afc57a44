package core

import (
	"errors"
	"testing"
	"time"
)

func validContact() Contact {
	return Contact{
		Name: "Sarah Johnson", Email: "sarah@techcorp.com",
		Company: "TechCorp Solutions", Status: StatusHot,
	}
}

func validOpportunity() Opportunity {
	return Opportunity{
		Title: "Enterprise Software License", Company: "TechCorp Solutions",
		Value: Money{Cents: 50_000_00}, Stage: StageNegotiation,
		Probability: 80, CloseDate: NewDate(2024, time.February, 15),
	}
}

func validTask() Task {
	return Task{
		Title: "Follow-up call", Priority: PriorityHigh, Status: TaskPending,
		DueDate: NewDate(2024, time.January, 16), Assignee: "John Doe",
	}
}

func validAppointment() Appointment {
	return Appointment{
		Title: "Product Demo", Date: NewDate(2024, time.January, 16),
		Time: "10:00", Duration: 60,
		Type: AppointmentVideo, Status: AppointmentConfirmed,
	}
}

func TestContactValidate(t *testing.T) {
	if err := validContact().Validate(); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Contact)
		want   error
	}{
		{"empty name", func(c *Contact) { c.Name = "  " }, ErrEmptyName},
		{"empty email", func(c *Contact) { c.Email = "" }, ErrEmptyEmail},
		{"empty company", func(c *Contact) { c.Company = "" }, ErrEmptyCompany},
		{"bad status", func(c *Contact) { c.Status = "lukewarm" }, ErrInvalidEnum},
	}
	for _, tc := range cases {
		c := validContact()
		tc.mutate(&c)
		if err := c.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestOpportunityValidate(t *testing.T) {
	if err := validOpportunity().Validate(); err != nil {
		t.Fatalf("valid opportunity rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Opportunity)
		want   error
	}{
		{"empty title", func(o *Opportunity) { o.Title = "" }, ErrEmptyTitle},
		{"empty company", func(o *Opportunity) { o.Company = "" }, ErrEmptyCompany},
		{"negative value", func(o *Opportunity) { o.Value.Cents = -1 }, ErrNegativeValue},
		{"bad stage", func(o *Opportunity) { o.Stage = "won" }, ErrInvalidEnum},
		{"probability over 100", func(o *Opportunity) { o.Probability = 101 }, ErrInvalidChance},
		{"negative probability", func(o *Opportunity) { o.Probability = -1 }, ErrInvalidChance},
		{"missing close date", func(o *Opportunity) { o.CloseDate = Date{} }, ErrMissingDate},
	}
	for _, tc := range cases {
		o := validOpportunity()
		tc.mutate(&o)
		if err := o.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	zero := validOpportunity()
	zero.Value.Cents = 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero-value deal should be valid: %v", err)
	}
}

func TestTaskValidate(t *testing.T) {
	if err := validTask().Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{"empty title", func(task *Task) { task.Title = "" }, ErrEmptyTitle},
		{"missing due date", func(task *Task) { task.DueDate = Date{} }, ErrMissingDate},
		{"empty assignee", func(task *Task) { task.Assignee = "" }, ErrEmptyAssignee},
		{"bad priority", func(task *Task) { task.Priority = "critical" }, ErrInvalidEnum},
		{"bad status", func(task *Task) { task.Status = "done" }, ErrInvalidEnum},
		{"bad type", func(task *Task) { task.Type = "fax" }, ErrInvalidEnum},
	}
	for _, tc := range cases {
		task := validTask()
		tc.mutate(&task)
		if err := task.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// Type is optional.
	untyped := validTask()
	untyped.Type = ""
	if err := untyped.Validate(); err != nil {
		t.Fatalf("untyped task should be valid: %v", err)
	}
}

func TestAppointmentValidate(t *testing.T) {
	if err := validAppointment().Validate(); err != nil {
		t.Fatalf("valid appointment rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Appointment)
		want   error
	}{
		{"empty title", func(a *Appointment) { a.Title = "" }, ErrEmptyTitle},
		{"missing date", func(a *Appointment) { a.Date = Date{} }, ErrMissingDate},
		{"missing time", func(a *Appointment) { a.Time = "" }, ErrMissingTime},
		{"zero duration", func(a *Appointment) { a.Duration = 0 }, ErrInvalidDuration},
		{"bad type", func(a *Appointment) { a.Type = "seance" }, ErrInvalidEnum},
		{"bad status", func(a *Appointment) { a.Status = "maybe" }, ErrInvalidEnum},
	}
	for _, tc := range cases {
		a := validAppointment()
		tc.mutate(&a)
		if err := a.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"Sarah Johnson", "SJ"},
		{"michael chen", "MC"},
		{"Cher", "C"},
		{"Mary Jane Watson", "MJW"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Initials(tc.in); got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestTaskOverdue(t *testing.T) {
	today := NewDate(2024, time.January, 16)

	task := validTask()
	task.DueDate = NewDate(2024, time.January, 15)
	if !task.Overdue(today) {
		t.Fatalf("past-due pending task should be overdue")
	}

	task.Status = TaskCompleted
	if task.Overdue(today) {
		t.Fatalf("completed task is never overdue")
	}

	task = validTask()
	task.DueDate = today
	if task.Overdue(today) {
		t.Fatalf("task due today is not overdue")
	}

	task.DueDate = Date{}
	if task.Overdue(today) {
		t.Fatalf("undated task is never overdue")
	}
}

func TestStageClosed(t *testing.T) {
	for _, s := range []Stage{StageClosedWon, StageClosedLost} {
		if !s.Closed() {
			t.Fatalf("%s should be closed", s)
		}
	}
	for _, s := range []Stage{StageProspecting, StageQualification, StageProposal, StageNegotiation} {
		if s.Closed() {
			t.Fatalf("%s should be open", s)
		}
	}
}
