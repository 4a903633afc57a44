package calendar

import (
	"testing"
	"time"

	"traction/internal/clock"
	"traction/internal/core"
)

func TestBuildGridLayout(t *testing.T) {
	// January 2024 starts on a Monday: one leading blank, 31 day cells.
	g := BuildGrid(2024, time.January, nil, core.Date{})
	if len(g.Cells) != 32 {
		t.Fatalf("expected 32 cells, got %d", len(g.Cells))
	}
	if !g.Cells[0].Empty {
		t.Fatalf("first cell should be a leading blank")
	}
	if g.Cells[1].Empty || g.Cells[1].Day != 1 {
		t.Fatalf("second cell should be day 1, got %+v", g.Cells[1])
	}
	if last := g.Cells[len(g.Cells)-1]; last.Day != 31 {
		t.Fatalf("last cell should be day 31, got %d", last.Day)
	}
}

func TestBuildGridLeapFebruary(t *testing.T) {
	// February 2024 starts on a Thursday and has 29 days.
	g := BuildGrid(2024, time.February, nil, core.Date{})
	blanks := 0
	days := 0
	for _, c := range g.Cells {
		if c.Empty {
			blanks++
		} else {
			days++
		}
	}
	if blanks != 4 || days != 29 {
		t.Fatalf("expected 4 blanks and 29 days, got %d and %d", blanks, days)
	}
}

func TestBuildGridPlacesAppointmentsByDay(t *testing.T) {
	appointments := []core.Appointment{
		{ID: 1, Title: "demo", Date: core.NewDate(2024, time.January, 16)},
		{ID: 2, Title: "undated"},
		{ID: 3, Title: "other month", Date: core.NewDate(2024, time.February, 16)},
	}
	g := BuildGrid(2024, time.January, appointments, core.Date{})

	cell, ok := g.DayCell(16)
	if !ok {
		t.Fatalf("day 16 missing")
	}
	if len(cell.Appointments) != 1 || cell.Appointments[0].ID != 1 {
		t.Fatalf("day 16 expected only appointment 1, got %v", cell.Appointments)
	}
	for day := 1; day <= 31; day++ {
		if day == 16 {
			continue
		}
		c, _ := g.DayCell(day)
		if len(c.Appointments) != 0 {
			t.Fatalf("day %d should be empty, has %d", day, len(c.Appointments))
		}
	}
}

func TestBuildGridToday(t *testing.T) {
	today := core.NewDate(2024, time.January, 16)
	g := BuildGrid(2024, time.January, nil, today)
	for _, c := range g.Cells {
		if c.IsToday != (!c.Empty && c.Day == 16) {
			t.Fatalf("wrong today flag on cell %+v", c)
		}
	}

	// Another month never highlights today.
	g = BuildGrid(2024, time.February, nil, today)
	for _, c := range g.Cells {
		if c.IsToday {
			t.Fatalf("february should not contain today, cell %+v", c)
		}
	}
}

func TestCellOverflow(t *testing.T) {
	date := core.NewDate(2024, time.January, 16)
	appointments := []core.Appointment{
		{ID: 1, Date: date}, {ID: 2, Date: date}, {ID: 3, Date: date}, {ID: 4, Date: date},
	}
	g := BuildGrid(2024, time.January, appointments, core.Date{})
	cell, _ := g.DayCell(16)

	if len(cell.Appointments) != 4 {
		t.Fatalf("cell should hold all 4 appointments, got %d", len(cell.Appointments))
	}
	if cell.Overflow != 2 {
		t.Fatalf("overflow expected 2, got %d", cell.Overflow)
	}
	if visible := cell.Visible(); len(visible) != VisibleLimit {
		t.Fatalf("visible expected %d, got %d", VisibleLimit, len(visible))
	}

	// At the limit there is no overflow.
	g = BuildGrid(2024, time.January, appointments[:2], core.Date{})
	cell, _ = g.DayCell(16)
	if cell.Overflow != 0 || len(cell.Visible()) != 2 {
		t.Fatalf("two appointments should show inline, got %+v", cell)
	}
}

func TestMonthNavigation(t *testing.T) {
	m := Month{Year: 2024, Month: time.January}
	if prev := m.Prev(); prev.Year != 2023 || prev.Month != time.December {
		t.Fatalf("january back expected 2023-12, got %+v", prev)
	}

	m = Month{Year: 2024, Month: time.December}
	if next := m.Next(); next.Year != 2025 || next.Month != time.January {
		t.Fatalf("december forward expected 2025-01, got %+v", next)
	}

	m = Month{Year: 2024, Month: time.June}
	if got := m.Prev().Next(); got != m {
		t.Fatalf("prev then next should round-trip, got %+v", got)
	}
}

func TestCurrent(t *testing.T) {
	clk := clock.Fixed(time.Date(2024, time.January, 16, 15, 4, 5, 0, time.UTC))
	if m := Current(clk); m.Year != 2024 || m.Month != time.January {
		t.Fatalf("expected 2024-01, got %+v", m)
	}
}
