package http

import (
	"net/http"

	"traction/internal/core"
	"traction/internal/crm"
	"traction/internal/log"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
	RelatedTo   string `json:"related_to"`
	Type        string `json:"type"`
}

func (req taskRequest) toTask() (core.Task, error) {
	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return core.Task{}, err
	}
	return core.Task{
		Title:       sanitizeInput(req.Title),
		Description: sanitizeInput(req.Description),
		Priority:    core.Priority(sanitizeInput(req.Priority)),
		Status:      core.TaskStatus(sanitizeInput(req.Status)),
		DueDate:     due,
		Assignee:    sanitizeInput(req.Assignee),
		RelatedTo:   sanitizeInput(req.RelatedTo),
		Type:        core.TaskType(sanitizeInput(req.Type)),
	}, nil
}

// taskListResponse pairs the matching tasks with their status/priority
// roll-up so one call feeds the whole task board.
type taskListResponse struct {
	Tasks   []crm.TaskView  `json:"tasks"`
	Summary crm.TaskSummary `json:"summary"`
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		query := searchQuery(r)
		writeJSON(w, http.StatusOK, taskListResponse{
			Tasks:   s.ws.Tasks(query),
			Summary: s.ws.TaskSummary(query),
		})
	case http.MethodPost:
		var req taskRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse task body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		task, err := req.toTask()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		id, err := s.ws.AddTask(task)
		if err != nil {
			writeCommandError(w, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Task created",
			log.FieldRecordID, id,
			"priority", string(task.Priority),
			log.FieldOperation, log.OpCreate)
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	id, action, ok := splitIDPath(r.URL.Path, "/api/tasks")
	if !ok || action != "" {
		writeError(w, http.StatusNotFound, "unknown task path")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req taskRequest
		if err := decodeBody(r, &req); err != nil {
			s.logger.ErrorContext(r.Context(), "Parse task body error",
				log.FieldError, err, log.FieldPath, r.URL.Path)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		task, err := req.toTask()
		if err != nil {
			writeCommandError(w, err)
			return
		}
		if err := s.ws.UpdateTask(id, task); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.ws.DeleteTask(id); err != nil {
			writeCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
