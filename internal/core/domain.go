package core

import (
	"errors"
	"strings"
)

// Contact temperature.
const (
	StatusHot  ContactStatus = "hot"
	StatusWarm ContactStatus = "warm"
	StatusCold ContactStatus = "cold"
)

// Pipeline stages, ordered prospecting → closed.
const (
	StageProspecting   Stage = "prospecting"
	StageQualification Stage = "qualification"
	StageProposal      Stage = "proposal"
	StageNegotiation   Stage = "negotiation"
	StageClosedWon     Stage = "closed-won"
	StageClosedLost    Stage = "closed-lost"
)

// Task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Task statuses.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task activity types.
const (
	TaskTypeCall     TaskType = "call"
	TaskTypeEmail    TaskType = "email"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeFollowUp TaskType = "follow-up"
	TaskTypeOther    TaskType = "other"
)

// Appointment types.
const (
	AppointmentMeeting AppointmentType = "meeting"
	AppointmentCall    AppointmentType = "call"
	AppointmentVideo   AppointmentType = "video"
	AppointmentOther   AppointmentType = "other"
)

// Appointment statuses.
const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type (
	ContactStatus     string
	Stage             string
	Priority          string
	TaskStatus        string
	TaskType          string
	AppointmentType   string
	AppointmentStatus string

	// Contact is a person tracked in the relationship book. Avatar and
	// LastContact are derived at creation; Pinned is toggled independently
	// of other edits.
	Contact struct {
		ID          int64         `json:"id"`
		Name        string        `json:"name"`
		Email       string        `json:"email"`
		Phone       string        `json:"phone,omitempty"`
		Company     string        `json:"company"`
		Position    string        `json:"position,omitempty"`
		Location    string        `json:"location,omitempty"`
		Status      ContactStatus `json:"status"`
		LastContact Date          `json:"last_contact"`
		Avatar      string        `json:"avatar"`
		Pinned      bool          `json:"is_pinned"`
	}

	// Opportunity is a deal moving through the pipeline.
	Opportunity struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Company     string `json:"company"`
		Contact     string `json:"contact,omitempty"`
		Description string `json:"description,omitempty"`
		Value       Money  `json:"value"`
		Stage       Stage  `json:"stage"`
		Probability int    `json:"probability"`
		CloseDate   Date   `json:"close_date"`
	}

	// Task is a dated piece of work assigned to someone.
	Task struct {
		ID          int64      `json:"id"`
		Title       string     `json:"title"`
		Description string     `json:"description,omitempty"`
		Priority    Priority   `json:"priority"`
		Status      TaskStatus `json:"status"`
		DueDate     Date       `json:"due_date"`
		Assignee    string     `json:"assignee"`
		RelatedTo   string     `json:"related_to,omitempty"`
		Type        TaskType   `json:"type,omitempty"`
	}

	// Appointment is a scheduled calendar entry.
	Appointment struct {
		ID          int64             `json:"id"`
		Title       string            `json:"title"`
		Description string            `json:"description,omitempty"`
		Date        Date              `json:"date"`
		Time        string            `json:"time"`
		Duration    int               `json:"duration"`
		Type        AppointmentType   `json:"type"`
		Attendees   []string          `json:"attendees,omitempty"`
		Location    string            `json:"location,omitempty"`
		Status      AppointmentStatus `json:"status"`
		RelatedTo   string            `json:"related_to,omitempty"`
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyEmail      = errors.New("empty email")
	ErrEmptyCompany    = errors.New("empty company")
	ErrEmptyTitle      = errors.New("empty title")
	ErrEmptyAssignee   = errors.New("empty assignee")
	ErrMissingDate     = errors.New("missing date")
	ErrMissingTime     = errors.New("missing time")
	ErrNegativeValue   = errors.New("negative value")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidEnum     = errors.New("invalid enumerated value")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidChance   = errors.New("probability out of range")
)

func (s ContactStatus) Valid() bool {
	switch s {
	case StatusHot, StatusWarm, StatusCold:
		return true
	}
	return false
}

func (s Stage) Valid() bool {
	switch s {
	case StageProspecting, StageQualification, StageProposal,
		StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// Closed reports whether the stage is terminal.
func (s Stage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeCall, TaskTypeEmail, TaskTypeMeeting, TaskTypeFollowUp, TaskTypeOther:
		return true
	}
	return false
}

func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentMeeting, AppointmentCall, AppointmentVideo, AppointmentOther:
		return true
	}
	return false
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Stable group sets for aggregation; a stage with no deals still reports a
// zero row (see aggregate.go).
var (
	AllStages = []Stage{
		StageProspecting, StageQualification, StageProposal,
		StageNegotiation, StageClosedWon, StageClosedLost,
	}
	AllPriorities           = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	AllTaskStatuses         = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}
	AllAppointmentStatuses  = []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled}
	AllAppointmentTypes     = []AppointmentType{AppointmentMeeting, AppointmentCall, AppointmentVideo, AppointmentOther}
)

// Initials derives the avatar string from a name ("Sarah Johnson" → "SJ").
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

func (c Contact) RecordID() int64 { return c.ID }

func (c Contact) WithID(id int64) Contact {
	c.ID = id
	return c
}

// Label is the display name used in activity entries and event messages.
func (c Contact) Label() string { return c.Name }

func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(c.Company) == "" {
		return ErrEmptyCompany
	}
	if !c.Status.Valid() {
		return ErrInvalidEnum
	}
	return nil
}

func (o Opportunity) RecordID() int64 { return o.ID }

func (o Opportunity) WithID(id int64) Opportunity {
	o.ID = id
	return o
}

func (o Opportunity) Label() string { return o.Title }

func (o Opportunity) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(o.Company) == "" {
		return ErrEmptyCompany
	}
	if err := o.Value.Validate(); err != nil {
		return err
	}
	if !o.Stage.Valid() {
		return ErrInvalidEnum
	}
	if o.Probability < 0 || o.Probability > 100 {
		return ErrInvalidChance
	}
	if o.CloseDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func (t Task) RecordID() int64 { return t.ID }

func (t Task) WithID(id int64) Task {
	t.ID = id
	return t
}

func (t Task) Label() string { return t.Title }

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.DueDate.IsZero() {
		return ErrMissingDate
	}
	if strings.TrimSpace(t.Assignee) == "" {
		return ErrEmptyAssignee
	}
	if !t.Priority.Valid() {
		return ErrInvalidEnum
	}
	if !t.Status.Valid() {
		return ErrInvalidEnum
	}
	if t.Type != "" && !t.Type.Valid() {
		return ErrInvalidEnum
	}
	return nil
}

// Overdue reports whether the task's due date has passed while the task is
// not yet completed. A zero due date never flags overdue.
func (t Task) Overdue(today Date) bool {
	if t.DueDate.IsZero() || t.Status == TaskCompleted {
		return false
	}
	return t.DueDate.Before(today)
}

func (a Appointment) RecordID() int64 { return a.ID }

func (a Appointment) WithID(id int64) Appointment {
	a.ID = id
	return a
}

func (a Appointment) Label() string { return a.Title }

func (a Appointment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if a.Date.IsZero() {
		return ErrMissingDate
	}
	if strings.TrimSpace(a.Time) == "" {
		return ErrMissingTime
	}
	if a.Duration <= 0 {
		return ErrInvalidDuration
	}
	if !a.Type.Valid() {
		return ErrInvalidEnum
	}
	if !a.Status.Valid() {
		return ErrInvalidEnum
	}
	return nil
}
