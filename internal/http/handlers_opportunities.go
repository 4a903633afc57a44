package http

import (
	"net/http"

	"traction/internal/core"
	"traction/internal/log"
)

type opportunityRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Stage       string `json:"stage"`
	Probability int    `json:"probability"`
	CloseDate   string `json:"close_date"`
}

// toOpportunity parses the decimal deal value and close date; both failures
// come back as validation errors for a 422.
func (req opportunityRequest) toOpportunity() (core.Opportunity, error) {
	cents, err := core.ParseDecimalToCents(req.Value)
	if err != nil {
		return core.Opportunity{}, err
	}
	closeDate, err := parseOptionalDate(req.CloseDate)
	if err != nil {
		return core.Opportunity{}, err
	}
	return core.Opportunity{
		Title:       sanitizeInput(req.Title),
		Company:     sanitizeInput(req.Company),
		Contact:     sanitizeInput(req.Contact),
		Description: sanitizeInput(req.Description),
		Value:       core.Money{Cents: cents},
		Stage:       core.Stage(sanitizeInput(req.Stage)),
		Probability: req.Probability,
		CloseDate:   closeDate,
	}, nil
}

func (s *Server) handleOpportunities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ws.Opportunities(searchQuery(r)))
	case http.MethodPost:
		var req opportunityRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse opportunity body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		opp, err := req.toOpportunity()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		id, err := s.ws.AddOpportunity(opp)
		if err != nil {
			writeCommandError(w, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Opportunity created",
			log.FieldRecordID, id,
			log.FieldStage, string(opp.Stage),
			log.FieldValueCents, opp.Value.Cents,
			log.FieldOperation, log.OpCreate)
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleOpportunityByID(w http.ResponseWriter, r *http.Request) {
	id, action, ok := splitIDPath(r.URL.Path, "/api/opportunities")
	if !ok || action != "" {
		writeError(w, http.StatusNotFound, "unknown opportunity path")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req opportunityRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse opportunity body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		opp, err := req.toOpportunity()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		if err := s.ws.UpdateOpportunity(id, opp); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.ws.DeleteOpportunity(id); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
