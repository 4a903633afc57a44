// Package crm orchestrates the record stores behind the command/view boundary:
// validated mutations in, filtered/sorted/aggregated views out. Optional
// persistence and event publishing ride on store-change notifications and
// never fail a command.
package crm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"traction/internal/amqp"
	"traction/internal/calendar"
	"traction/internal/clock"
	"traction/internal/core"
	"traction/internal/storage"
	"traction/internal/store"
)

const (
	defaultUpcomingLimit = 5
	defaultActivityLimit = 20
)

// Activity is one entry of the in-process recent-activity feed.
type Activity struct {
	Kind     string    `json:"kind"`
	Op       store.Op  `json:"op"`
	RecordID int64     `json:"record_id"`
	Label    string    `json:"label"`
	At       time.Time `json:"at"`
}

// Options carries the optional collaborators; both may be nil.
type Options struct {
	Repository    *storage.SQLiteRepository
	Events        *amqp.Client
	UpcomingLimit int
	ActivityLimit int
}

// Workspace owns the four record collections for one session.
type Workspace struct {
	clk    clock.Clock
	repo   *storage.SQLiteRepository
	events *amqp.Client

	upcomingLimit int
	activityLimit int

	contacts      *store.Store[core.Contact]
	opportunities *store.Store[core.Opportunity]
	tasks         *store.Store[core.Task]
	appointments  *store.Store[core.Appointment]

	mu         sync.Mutex
	activities []Activity // newest first
}

func NewWorkspace(clk clock.Clock, opts Options) *Workspace {
	w := &Workspace{
		clk:           clk,
		repo:          opts.Repository,
		events:        opts.Events,
		upcomingLimit: opts.UpcomingLimit,
		activityLimit: opts.ActivityLimit,
		contacts:      store.New[core.Contact](store.KindContact),
		opportunities: store.New[core.Opportunity](store.KindOpportunity),
		tasks:         store.New[core.Task](store.KindTask),
		appointments:  store.New[core.Appointment](store.KindAppointment),
	}
	if w.upcomingLimit <= 0 {
		w.upcomingLimit = defaultUpcomingLimit
	}
	if w.activityLimit <= 0 {
		w.activityLimit = defaultActivityLimit
	}

	attach(w, w.contacts)
	attach(w, w.opportunities)
	attach(w, w.tasks)
	attach(w, w.appointments)

	return w
}

// attach wires one store's change events into the activity feed, the optional
// write-through repository and the optional event publisher. Persistence and
// publish failures are logged and never surface to the caller; the in-memory
// mutation already succeeded.
func attach[T store.Record[T]](w *Workspace, st *store.Store[T]) {
	st.Subscribe(func(ev store.Event) {
		ctx := context.Background()
		w.recordActivity(ev)

		if w.repo != nil {
			var err error
			if ev.Op == store.OpDeleted {
				err = w.repo.DeleteRecord(ctx, ev.Kind, ev.ID)
			} else if item, ok := st.Get(ev.ID); ok {
				err = w.repo.UpsertRecord(ctx, ev.Kind, ev.ID, item)
			}
			if err != nil {
				slog.ErrorContext(ctx, "Failed to persist record change",
					"error", err,
					"record_kind", ev.Kind,
					"record_id", ev.ID,
					"operation", string(ev.Op))
			}
		}

		if w.events != nil {
			if err := w.events.PublishRecordEvent(ctx, ev.Kind, string(ev.Op), ev.ID, ev.Label); err != nil {
				slog.ErrorContext(ctx, "Failed to publish record event",
					"error", err,
					"record_kind", ev.Kind,
					"record_id", ev.ID)
			}
		}
	})
}

func (w *Workspace) recordActivity(ev store.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activities = append([]Activity{{
		Kind:     ev.Kind,
		Op:       ev.Op,
		RecordID: ev.ID,
		Label:    ev.Label,
		At:       w.clk.Now(),
	}}, w.activities...)
	if len(w.activities) > w.activityLimit {
		w.activities = w.activities[:w.activityLimit]
	}
}

// Today returns the clock's current calendar date.
func (w *Workspace) Today() core.Date {
	return core.DateOf(w.clk.Now())
}

// CurrentMonth returns the clock's current (year, month).
func (w *Workspace) CurrentMonth() calendar.Month {
	return calendar.Current(w.clk)
}

// Bootstrap fills the stores: from the repository when one is attached,
// otherwise from the fixed demo dataset. An attached-but-empty repository is
// seeded and persisted so the next session starts from the same data.
func (w *Workspace) Bootstrap(ctx context.Context) error {
	if w.repo == nil {
		w.seedDemoData()
		return nil
	}

	contacts, err := storage.LoadAll[core.Contact](ctx, w.repo, store.KindContact)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	opportunities, err := storage.LoadAll[core.Opportunity](ctx, w.repo, store.KindOpportunity)
	if err != nil {
		return fmt.Errorf("load opportunities: %w", err)
	}
	tasks, err := storage.LoadAll[core.Task](ctx, w.repo, store.KindTask)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	appointments, err := storage.LoadAll[core.Appointment](ctx, w.repo, store.KindAppointment)
	if err != nil {
		return fmt.Errorf("load appointments: %w", err)
	}

	if len(contacts)+len(opportunities)+len(tasks)+len(appointments) == 0 {
		w.seedDemoData()
		return w.persistAll(ctx)
	}

	w.contacts.Replace(contacts)
	w.opportunities.Replace(opportunities)
	w.tasks.Replace(tasks)
	w.appointments.Replace(appointments)
	return nil
}

func (w *Workspace) seedDemoData() {
	w.contacts.Replace(store.SeedContacts())
	w.opportunities.Replace(store.SeedOpportunities())
	w.tasks.Replace(store.SeedTasks())
	w.appointments.Replace(store.SeedAppointments())
}

func (w *Workspace) persistAll(ctx context.Context) error {
	for _, c := range w.contacts.List() {
		if err := w.repo.UpsertRecord(ctx, store.KindContact, c.ID, c); err != nil {
			return err
		}
	}
	for _, o := range w.opportunities.List() {
		if err := w.repo.UpsertRecord(ctx, store.KindOpportunity, o.ID, o); err != nil {
			return err
		}
	}
	for _, t := range w.tasks.List() {
		if err := w.repo.UpsertRecord(ctx, store.KindTask, t.ID, t); err != nil {
			return err
		}
	}
	for _, a := range w.appointments.List() {
		if err := w.repo.UpsertRecord(ctx, store.KindAppointment, a.ID, a); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the optional collaborators.
func (w *Workspace) Close() error {
	var errs []error
	if w.repo != nil {
		if err := w.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if w.events != nil {
		if err := w.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close workspace: %v", errs)
	}
	return nil
}
