package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.SameDay(NewDate(2024, time.January, 16)) {
		t.Fatalf("parsed wrong date: %v", d)
	}

	for _, in := range []string{"", "16/01/2024", "2024-13-01", "not a date"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("%q expected ErrMalformedDate, got %v", in, err)
		}
	}
}

func TestDateDayLevelComparison(t *testing.T) {
	morning := DateOf(time.Date(2024, time.January, 16, 8, 0, 0, 0, time.UTC))
	evening := DateOf(time.Date(2024, time.January, 16, 23, 30, 0, 0, time.UTC))
	if !morning.SameDay(evening) {
		t.Fatalf("same calendar day should match regardless of time")
	}
	if morning.Before(evening) {
		t.Fatalf("same day must not order before itself")
	}
	if !morning.Before(NewDate(2024, time.January, 17)) {
		t.Fatalf("jan 16 should be before jan 17")
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Fatalf("expected quoted date, got %s", b)
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("zero date should marshal as null, got %s", b)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"2024-01-15"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.SameDay(NewDate(2024, time.January, 15)) {
		t.Fatalf("unmarshalled wrong date: %v", d)
	}
	if err := json.Unmarshal([]byte("null"), &d); err != nil || !d.IsZero() {
		t.Fatalf("null should decode to zero date (err=%v)", err)
	}
}
