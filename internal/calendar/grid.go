// Package calendar maps date-stamped records onto a navigable month view: a
// 7-column grid of day cells with leading blanks, today highlighting and a
// fixed per-cell display limit.
package calendar

import (
	"time"

	"traction/internal/clock"
	"traction/internal/core"
)

// VisibleLimit is the number of appointments a cell shows before reporting a
// "+N more" overflow.
const VisibleLimit = 2

// Cell is one day slot of the month grid. Leading blanks before the first of
// the month have Empty set and carry no day or appointments.
type Cell struct {
	Day          int                `json:"day"`
	Date         core.Date          `json:"date"`
	Empty        bool               `json:"empty"`
	IsToday      bool               `json:"is_today"`
	Appointments []core.Appointment `json:"appointments"`
	Overflow     int                `json:"overflow"`
}

// Visible returns the appointments a cell displays inline.
func (c Cell) Visible() []core.Appointment {
	if len(c.Appointments) <= VisibleLimit {
		return c.Appointments
	}
	return c.Appointments[:VisibleLimit]
}

// Grid is a month of cells: firstWeekday leading blanks followed by one cell
// per day. Rendered in 7 columns, Sunday first.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// DayCell returns the cell for a day of the month.
func (g Grid) DayCell(day int) (Cell, bool) {
	for _, c := range g.Cells {
		if !c.Empty && c.Day == day {
			return c, true
		}
	}
	return Cell{}, false
}

// BuildGrid lays out the given month and places each appointment in the cell
// matching its calendar date. Date matching is day-level, never a timestamp
// comparison, so time-of-day cannot shift a record across cells; appointments
// without a date are excluded.
func BuildGrid(year int, month time.Month, appointments []core.Appointment, today core.Date) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	firstWeekday := int(first.Weekday()) // 0=Sunday..6=Saturday

	g := Grid{Year: year, Month: month, Cells: make([]Cell, 0, firstWeekday+daysInMonth)}
	for i := 0; i < firstWeekday; i++ {
		g.Cells = append(g.Cells, Cell{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := core.NewDate(year, month, day)
		cell := Cell{Day: day, Date: date, IsToday: date.SameDay(today)}
		for _, a := range appointments {
			if a.Date.IsZero() || !a.Date.SameDay(date) {
				continue
			}
			cell.Appointments = append(cell.Appointments, a)
		}
		if n := len(cell.Appointments); n > VisibleLimit {
			cell.Overflow = n - VisibleLimit
		}
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// Month is a displayed (year, month) pair with unbounded navigation.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Prev shifts back one month, rolling January to the previous December.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next shifts forward one month, rolling December to the next January.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Current resets the displayed month to the clock's current month.
func Current(c clock.Clock) Month {
	now := c.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}
