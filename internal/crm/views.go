package crm

import (
	"traction/internal/calendar"
	"traction/internal/core"
)

// Views are pure functions of current store state plus the request's query
// and month parameters. Nothing here is cached; every call recomputes from
// the live collections.

// Contacts returns the contact book filtered by the query, pinned records
// first, then by name.
func (w *Workspace) Contacts(query string) []core.Contact {
	return core.SortContacts(core.FilterMatching(w.contacts.List(), query))
}

// Opportunities returns matching deals in insertion order.
func (w *Workspace) Opportunities(query string) []core.Opportunity {
	return core.FilterMatching(w.opportunities.List(), query)
}

// Tasks returns matching tasks in insertion order, with each task's overdue
// flag resolved against the clock.
func (w *Workspace) Tasks(query string) []TaskView {
	today := w.Today()
	matched := core.FilterMatching(w.tasks.List(), query)
	out := make([]TaskView, 0, len(matched))
	for _, t := range matched {
		out = append(out, TaskView{Task: t, Overdue: t.Overdue(today)})
	}
	return out
}

// TaskView decorates a task with its derived overdue state.
type TaskView struct {
	core.Task
	Overdue bool `json:"overdue"`
}

// Appointments returns matching appointments in insertion order.
func (w *Workspace) Appointments(query string) []core.Appointment {
	return core.FilterMatching(w.appointments.List(), query)
}

// Pipeline returns per-stage deal totals over the matching deals; all six
// stages are always present.
func (w *Workspace) Pipeline(query string) []core.StageRow {
	return core.PipelineRows(w.Opportunities(query))
}

// KPIs derives the analytics roll-up over the whole deal book.
func (w *Workspace) KPIs() core.KPISet {
	return core.ComputeKPIs(w.opportunities.List())
}

// TaskSummary groups matching tasks by status and priority and counts the
// overdue ones.
type TaskSummary struct {
	Total      int                               `json:"total"`
	ByStatus   map[core.TaskStatus]core.GroupTotal `json:"by_status"`
	ByPriority map[core.Priority]core.GroupTotal   `json:"by_priority"`
	Overdue    int                               `json:"overdue"`
}

func (w *Workspace) TaskSummary(query string) TaskSummary {
	today := w.Today()
	matched := core.FilterMatching(w.tasks.List(), query)
	summary := TaskSummary{
		Total:      len(matched),
		ByStatus:   core.TasksByStatus(matched),
		ByPriority: core.TasksByPriority(matched),
	}
	for _, t := range matched {
		if t.Overdue(today) {
			summary.Overdue++
		}
	}
	return summary
}

// Overview is the dashboard header: headline counts, pipeline value, the
// upcoming schedule window and the recent activity feed.
type Overview struct {
	TotalContacts       int                `json:"total_contacts"`
	ActiveOpportunities int                `json:"active_opportunities"`
	PendingTasks        int                `json:"pending_tasks"`
	OverdueTasks        int                `json:"overdue_tasks"`
	PipelineValue       core.Money         `json:"pipeline_value"`
	Upcoming            []core.Appointment `json:"upcoming"`
	RecentActivity      []Activity         `json:"recent_activity"`
}

func (w *Workspace) Overview() Overview {
	today := w.Today()
	ov := Overview{
		TotalContacts: w.contacts.Len(),
		Upcoming:      core.UpcomingAppointments(w.appointments.List(), today, w.upcomingLimit),
	}
	for _, o := range w.opportunities.List() {
		if !o.Stage.Closed() {
			ov.ActiveOpportunities++
			ov.PipelineValue = ov.PipelineValue.Add(o.Value)
		}
	}
	for _, t := range w.tasks.List() {
		if t.Status != core.TaskCompleted {
			ov.PendingTasks++
		}
		if t.Overdue(today) {
			ov.OverdueTasks++
		}
	}
	ov.RecentActivity = w.RecentActivity()
	return ov
}

// RecentActivity returns the in-process activity feed, newest first.
func (w *Workspace) RecentActivity() []Activity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Activity(nil), w.activities...)
}

// UpcomingTasks returns the next open tasks due today or later.
func (w *Workspace) UpcomingTasks() []core.Task {
	return core.UpcomingTasks(w.tasks.List(), w.Today(), w.upcomingLimit)
}

// CalendarGrid lays out one month of matching appointments.
func (w *Workspace) CalendarGrid(m calendar.Month, query string) calendar.Grid {
	matched := core.FilterMatching(w.appointments.List(), query)
	return calendar.BuildGrid(m.Year, m.Month, matched, w.Today())
}
