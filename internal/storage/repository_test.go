package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"traction/internal/core"
	"traction/internal/store"
)

func testRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "traction.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRecordRoundTrip(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	contact := core.Contact{
		ID: 1, Name: "Sarah Johnson", Email: "sarah@techcorp.com",
		Company: "TechCorp Solutions", Status: core.StatusHot,
		LastContact: core.NewDate(2024, time.January, 15), Avatar: "SJ", Pinned: true,
	}
	if err := repo.UpsertRecord(ctx, store.KindContact, contact.ID, contact); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	loaded, err := LoadAll[core.Contact](ctx, repo, store.KindContact)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != 1 || got.Name != "Sarah Johnson" || !got.Pinned {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.LastContact.SameDay(core.NewDate(2024, time.January, 15)) {
		t.Fatalf("date lost in round trip: %v", got.LastContact)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	task := core.Task{
		ID: 1, Title: "first", Priority: core.PriorityLow, Status: core.TaskPending,
		DueDate: core.NewDate(2024, time.January, 20), Assignee: "a",
	}
	if err := repo.UpsertRecord(ctx, store.KindTask, task.ID, task); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	task.Title = "second"
	if err := repo.UpsertRecord(ctx, store.KindTask, task.ID, task); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	loaded, err := LoadAll[core.Task](ctx, repo, store.KindTask)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "second" {
		t.Fatalf("expected single updated row, got %+v", loaded)
	}
}

func TestDeleteRecord(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	appt := core.Appointment{
		ID: 1, Title: "demo", Date: core.NewDate(2024, time.January, 16),
		Time: "10:00", Duration: 60,
		Type: core.AppointmentVideo, Status: core.AppointmentConfirmed,
	}
	if err := repo.UpsertRecord(ctx, store.KindAppointment, appt.ID, appt); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.DeleteRecord(ctx, store.KindAppointment, appt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	loaded, err := LoadAll[core.Appointment](ctx, repo, store.KindAppointment)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected no rows, got %d", len(loaded))
	}
}

func TestKindsAreIsolated(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	contact := core.Contact{ID: 1, Name: "A", Email: "a@x.com", Company: "X", Status: core.StatusCold}
	task := core.Task{
		ID: 1, Title: "t", Priority: core.PriorityLow, Status: core.TaskPending,
		DueDate: core.NewDate(2024, time.January, 20), Assignee: "a",
	}
	if err := repo.UpsertRecord(ctx, store.KindContact, 1, contact); err != nil {
		t.Fatalf("upsert contact: %v", err)
	}
	if err := repo.UpsertRecord(ctx, store.KindTask, 1, task); err != nil {
		t.Fatalf("upsert task: %v", err)
	}

	contacts, err := LoadAll[core.Contact](ctx, repo, store.KindContact)
	if err != nil || len(contacts) != 1 {
		t.Fatalf("expected 1 contact (err=%v), got %d", err, len(contacts))
	}
	if err := repo.DeleteRecord(ctx, store.KindContact, 1); err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	tasks, err := LoadAll[core.Task](ctx, repo, store.KindTask)
	if err != nil || len(tasks) != 1 {
		t.Fatalf("task row should survive contact delete (err=%v), got %d", err, len(tasks))
	}
}

func TestActivityArchiveIdempotent(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	a := Activity{
		EventID: "evt-1", RecordKind: store.KindContact, Operation: "created",
		RecordID: 1, Label: "Sarah Johnson", OccurredAt: time.Now(),
	}
	if err := repo.ArchiveActivity(ctx, a); err != nil {
		t.Fatalf("archive: %v", err)
	}
	// Re-delivery of the same event must not duplicate the row.
	if err := repo.ArchiveActivity(ctx, a); err != nil {
		t.Fatalf("archive again: %v", err)
	}

	got, err := repo.RecentActivities(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(got))
	}
	if got[0].EventID != "evt-1" || got[0].Label != "Sarah Johnson" {
		t.Fatalf("unexpected activity: %+v", got[0])
	}
}

func TestRecentActivitiesNewestFirst(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	base := time.Date(2024, time.January, 16, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"evt-1", "evt-2", "evt-3"} {
		a := Activity{
			EventID: id, RecordKind: store.KindTask, Operation: "created",
			RecordID: int64(i + 1), Label: id, OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.ArchiveActivity(ctx, a); err != nil {
			t.Fatalf("archive %s: %v", id, err)
		}
	}

	got, err := repo.RecentActivities(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].EventID != "evt-3" || got[1].EventID != "evt-2" {
		t.Fatalf("expected newest first, got %s then %s", got[0].EventID, got[1].EventID)
	}
}
