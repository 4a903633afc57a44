// Package worker archives consumed record events into the activity table.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"traction/internal/amqp"
	"traction/internal/storage"
)

// FeedWorker turns record-event messages into archived activity rows.
type FeedWorker struct {
	storage *storage.SQLiteRepository
}

func NewFeedWorker(storage *storage.SQLiteRepository) *FeedWorker {
	return &FeedWorker{storage: storage}
}

// HandleRecordEvent archives a single consumed record event. The event id
// makes re-deliveries idempotent.
func (w *FeedWorker) HandleRecordEvent(ctx context.Context, msg *amqp.RecordEventMessage) error {
	slog.InfoContext(ctx, "Processing record event",
		"event_id", msg.EventID,
		"record_kind", msg.Kind,
		"operation", msg.Op,
		"record_id", msg.RecordID)

	err := w.storage.ArchiveActivity(ctx, storage.Activity{
		EventID:    msg.EventID,
		RecordKind: msg.Kind,
		Operation:  msg.Op,
		RecordID:   msg.RecordID,
		Label:      msg.Label,
		OccurredAt: msg.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("archive record event: %w", err)
	}
	return nil
}
