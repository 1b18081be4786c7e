package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"task-management/internal/model"
	pkgLog "task-management/pkg/log"
)

type handler struct {
	store Store
	l     pkgLog.Logger
}

// NewHandler serves the task REST boundary under /api/tasks:
//
//	GET    /api/tasks       -> 200 [Task...]
//	GET    /api/tasks/{id}  -> 200 Task | 404
//	POST   /api/tasks       -> 201 Task
//	PUT    /api/tasks/{id}  -> 200 Task | 404
//	DELETE /api/tasks/{id}  -> 204 | 404
func NewHandler(store Store, l pkgLog.Logger) http.Handler {
	h := &handler{store: store, l: l}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/tasks", h.list)
	mux.HandleFunc("POST /api/tasks", h.create)
	mux.HandleFunc("GET /api/tasks/{id}", h.get)
	mux.HandleFunc("PUT /api/tasks/{id}", h.update)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.delete)
	return mux
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := withRequestID(r)

	tasks, err := h.store.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "devserver.list: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := withRequestID(r)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	task, err := h.store.Get(ctx, id)
	if err != nil {
		h.storeError(w, r, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := withRequestID(r)

	task, ok := decodeTask(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(ctx, task)
	if err != nil {
		h.storeError(w, r, "create", err)
		return
	}
	h.l.Infof(ctx, "devserver.create: task %d created", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := withRequestID(r)

	id, ok := parseID(w, r)
	if !ok {
		return
	}
	task, ok := decodeTask(w, r)
	if !ok {
		return
	}

	updated, err := h.store.Update(ctx, id, task)
	if err != nil {
		h.storeError(w, r, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := withRequestID(r)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		h.storeError(w, r, "delete", err)
		return
	}
	h.l.Infof(ctx, "devserver.delete: task %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	h.l.Errorf(r.Context(), "devserver.%s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "could not "+op+" task")
}

func withRequestID(r *http.Request) context.Context {
	ctx := r.Context()
	if id := r.Header.Get("X-Request-ID"); id != "" {
		ctx = pkgLog.WithRequestID(ctx, id)
	}
	return ctx
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

// decodeTask reads and validates a task body. The id field, if any, is ignored.
func decodeTask(w http.ResponseWriter, r *http.Request) (model.Task, bool) {
	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return model.Task{}, false
	}

	task.ID = 0
	task.Title = strings.TrimSpace(task.Title)
	if task.Status == "" {
		task.Status = model.StatusToDo
	}
	if err := task.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.Task{}, false
	}
	return task, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
