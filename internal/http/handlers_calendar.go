package http

import (
	"net/http"

	"traction/internal/calendar"
)

// calendarResponse carries the laid-out month plus the months the prev/next
// navigation arrows point at.
type calendarResponse struct {
	Grid calendar.Grid  `json:"grid"`
	Prev calendar.Month `json:"prev"`
	Next calendar.Month `json:"next"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	month := parseMonthParams(r, s.ws.CurrentMonth())
	writeJSON(w, http.StatusOK, calendarResponse{
		Grid: s.ws.CalendarGrid(month, searchQuery(r)),
		Prev: month.Prev(),
		Next: month.Next(),
	})
}
