package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"traction/internal/calendar"
	"traction/internal/core"
	"traction/internal/store"
)

// writeJSON renders v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeCommandError maps domain failures onto status codes: unknown ids are
// 404, malformed dates and validation failures are 422.
func writeCommandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

// parseMonthParams extracts year and month from query parameters, defaulting
// to the displayed fallback month when absent or unparseable.
func parseMonthParams(r *http.Request, fallback calendar.Month) calendar.Month {
	m := fallback
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			m.Year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 12 {
			m.Month = time.Month(n)
		}
	}
	return m
}

// searchQuery returns the free-text filter parameter.
func searchQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

// splitIDPath parses "{id}" or "{id}/{action}" out of the path remainder
// after the collection prefix.
func splitIDPath(path, prefix string) (id int64, action string, ok bool) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return 0, "", false
	}
	idPart, actionPart, _ := strings.Cut(rest, "/")
	parsed, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, "", false
	}
	return parsed, actionPart, true
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseOptionalDate parses a YYYY-MM-DD string, treating empty as the zero
// date.
func parseOptionalDate(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, nil
	}
	return core.ParseDate(s)
}
