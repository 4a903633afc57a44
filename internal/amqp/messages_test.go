package amqp

import "testing"

func TestRecordEventMessageRoundTrip(t *testing.T) {
	msg := NewRecordEventMessage("contact", "created", 7, "Sarah Johnson")
	if msg.EventID == "" {
		t.Fatalf("event id should be assigned")
	}
	if msg.Timestamp.IsZero() {
		t.Fatalf("timestamp should be assigned")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := RecordEventMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.EventID != msg.EventID || got.Kind != "contact" || got.Op != "created" || got.RecordID != 7 || got.Label != "Sarah Johnson" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestRecordEventMessageUniqueIDs(t *testing.T) {
	a := NewRecordEventMessage("task", "updated", 1, "x")
	b := NewRecordEventMessage("task", "updated", 1, "x")
	if a.EventID == b.EventID {
		t.Fatalf("event ids must be unique")
	}
}

func TestRecordEventMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := RecordEventMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error")
	}
}
