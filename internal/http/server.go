// Package http exposes the workspace as a JSON API: CRUD per record kind plus
// the derived dashboard, pipeline, analytics and calendar views.
package http

import (
	"context"
	"net/http"
	"sync"

	"traction/internal/crm"
	applog "traction/internal/log"
	"traction/internal/middleware/trace"
)

type Server struct {
	http.Server
	ws     *crm.Workspace
	logger *applog.Logger

	tracer       *trace.Middleware
	shutdownOnce sync.Once
}

// NewServer configures routes around the workspace, returning a
// ready-to-run http.Server.
func NewServer(addr string, ws *crm.Workspace) *Server {
	mux := http.NewServeMux()

	logger := applog.New(applog.Config{
		Level:     applog.DefaultConfig().Level,
		Component: applog.ComponentHTTP,
	})
	s := &Server{
		ws:     ws,
		logger: logger,
		tracer: trace.NewMiddleware(),
	}
	s.Server = http.Server{
		Addr:    addr,
		Handler: s.tracer.Middleware(applog.Middleware(logger)(mux)),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/contacts", s.handleContacts)
	mux.HandleFunc("/api/contacts/", s.handleContactByID)
	mux.HandleFunc("/api/opportunities", s.handleOpportunities)
	mux.HandleFunc("/api/opportunities/", s.handleOpportunityByID)
	mux.HandleFunc("/api/tasks", s.handleTasks)
	mux.HandleFunc("/api/tasks/", s.handleTaskByID)
	mux.HandleFunc("/api/appointments", s.handleAppointments)
	mux.HandleFunc("/api/appointments/", s.handleAppointmentByID)

	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/pipeline", s.handlePipeline)
	mux.HandleFunc("/api/analytics", s.handleAnalytics)
	mux.HandleFunc("/api/calendar", s.handleCalendar)

	return s
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
