package http

import (
	"net/http"

	"traction/internal/core"
	"traction/internal/log"
)

type contactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

func (req contactRequest) toContact() core.Contact {
	return core.Contact{
		Name:     sanitizeInput(req.Name),
		Email:    sanitizeInput(req.Email),
		Phone:    sanitizeInput(req.Phone),
		Company:  sanitizeInput(req.Company),
		Position: sanitizeInput(req.Position),
		Location: sanitizeInput(req.Location),
		Status:   core.ContactStatus(sanitizeInput(req.Status)),
	}
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ws.Contacts(searchQuery(r)))
	case http.MethodPost:
		var req contactRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse contact body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, err := s.ws.AddContact(req.toContact())
		if err != nil {
			writeCommandError(w, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Contact created",
			log.FieldRecordID, id,
			log.FieldOperation, log.OpCreate)
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleContactByID(w http.ResponseWriter, r *http.Request) {
	id, action, ok := splitIDPath(r.URL.Path, "/api/contacts")
	if !ok {
		writeError(w, http.StatusNotFound, "unknown contact path")
		return
	}

	if action == "pin" {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := s.ws.TogglePin(id); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if action != "" {
		writeError(w, http.StatusNotFound, "unknown contact path")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req contactRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse contact body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.ws.UpdateContact(id, req.toContact()); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.ws.DeleteContact(id); err != nil {
			writeCommandError(w, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Contact deleted",
			log.FieldRecordID, id,
			log.FieldOperation, log.OpDelete)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
