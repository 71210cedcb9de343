package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// TodoHandler handles HTTP requests for to-do item operations.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleList handles GET /items requests, with an optional ?status= filter.
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	items, err := h.service.List(r.Context(), identity.UserID, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if items == nil {
		items = []model.TodoResponse{}
	}
	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: items})
}

// HandleCreate handles POST /items requests.
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		if isTodoValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.DataResponse{Success: true, Data: item})
}

// HandleUpdate handles PUT /items/{id} requests with a partial body.
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	todoID := chi.URLParam(r, "id")
	if todoID == "" || len(todoID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid item id"))
		return
	}

	var req model.UpdateTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), identity.UserID, todoID, req)
	if err != nil {
		switch {
		case isTodoValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: item})
}

// HandleDelete handles DELETE /items/{id} requests.
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	todoID := chi.URLParam(r, "id")
	if todoID == "" || len(todoID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid item id"))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, todoID); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: map[string]any{}})
}

func isTodoValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrTitleTooLong) ||
		errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrDescriptionTooLong) ||
		errors.Is(err, service.ErrDueDateRequired) ||
		errors.Is(err, service.ErrInvalidDueDate) ||
		errors.Is(err, service.ErrInvalidStatus)
}
