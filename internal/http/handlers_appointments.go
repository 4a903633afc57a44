package http

import (
	"net/http"

	"traction/internal/core"
	"traction/internal/log"
)

type appointmentRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Duration    int      `json:"duration"`
	Type        string   `json:"type"`
	Attendees   []string `json:"attendees"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	RelatedTo   string   `json:"related_to"`
}

func (req appointmentRequest) toAppointment() (core.Appointment, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return core.Appointment{}, err
	}
	attendees := make([]string, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		if v := sanitizeInput(a); v != "" {
			attendees = append(attendees, v)
		}
	}
	return core.Appointment{
		Title:       sanitizeInput(req.Title),
		Description: sanitizeInput(req.Description),
		Date:        date,
		Time:        sanitizeInput(req.Time),
		Duration:    req.Duration,
		Type:        core.AppointmentType(sanitizeInput(req.Type)),
		Attendees:   attendees,
		Location:    sanitizeInput(req.Location),
		Status:      core.AppointmentStatus(sanitizeInput(req.Status)),
		RelatedTo:   sanitizeInput(req.RelatedTo),
	}, nil
}

func (s *Server) handleAppointments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ws.Appointments(searchQuery(r)))
	case http.MethodPost:
		var req appointmentRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse appointment body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		appt, err := req.toAppointment()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		id, err := s.ws.AddAppointment(appt)
		if err != nil {
			writeCommandError(w, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Appointment created",
			log.FieldRecordID, id,
			"date", appt.Date.String(),
			log.FieldOperation, log.OpCreate)
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAppointmentByID(w http.ResponseWriter, r *http.Request) {
	id, action, ok := splitIDPath(r.URL.Path, "/api/appointments")
	if !ok || action != "" {
		writeError(w, http.StatusNotFound, "unknown appointment path")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req appointmentRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse appointment body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		appt, err := req.toAppointment()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		if err := s.ws.UpdateAppointment(id, appt); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.ws.DeleteAppointment(id); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
