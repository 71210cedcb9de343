package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title must be at most 100 characters")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description must be at most 500 characters")
	ErrDueDateRequired     = errors.New("due date is required")
	ErrInvalidDueDate      = errors.New("due date must be in YYYY-MM-DD format")
	ErrInvalidStatus       = errors.New("status must be incomplete or complete")
	ErrTodoNotFound        = errors.New("todo not found")
)

// TodoStore is the persistence surface the todo flows need.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, ownerID, id string) (*model.Todo, error)
	List(ctx context.Context, ownerID string, filter repository.TodoFilter) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, ownerID, id string) error
}

// TodoService handles to-do item business rules. The owner always comes from
// the verified token, never from client input.
type TodoService struct {
	store TodoStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(store TodoStore) *TodoService {
	return &TodoService{store: store}
}

// Create validates the fields, attaches the owner server-side and persists
// the todo. An omitted status defaults to incomplete.
func (s *TodoService) Create(ctx context.Context, ownerID string, req model.CreateTodoRequest) (model.TodoResponse, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return model.TodoResponse{}, err
	}

	description, err := validateDescription(req.Description)
	if err != nil {
		return model.TodoResponse{}, err
	}

	if req.DueDate == "" {
		return model.TodoResponse{}, ErrDueDateRequired
	}
	dueDate, err := time.Parse(model.DueDateFormat, req.DueDate)
	if err != nil {
		return model.TodoResponse{}, ErrInvalidDueDate
	}

	status := req.Status
	if status == "" {
		status = model.StatusIncomplete
	}
	if err := validateStatus(status); err != nil {
		return model.TodoResponse{}, err
	}

	todo := &model.Todo{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
	}

	if err := s.store.Create(ctx, todo); err != nil {
		return model.TodoResponse{}, err
	}

	return todo.ToResponse(), nil
}

// List returns the owner's todos, newest first, optionally filtered by status.
func (s *TodoService) List(ctx context.Context, ownerID, statusFilter string) ([]model.TodoResponse, error) {
	var filter repository.TodoFilter
	if statusFilter != "" {
		if err := validateStatus(statusFilter); err != nil {
			return nil, err
		}
		filter.Status = &statusFilter
	}

	todos, err := s.store.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.TodoResponse, len(todos))
	for i := range todos {
		result[i] = todos[i].ToResponse()
	}
	return result, nil
}

// Update applies a partial update to the owner's todo. A todo owned by
// someone else surfaces as ErrTodoNotFound, same as a missing one.
func (s *TodoService) Update(ctx context.Context, ownerID, todoID string, req model.UpdateTodoRequest) (model.TodoResponse, error) {
	todo, err := s.store.GetByID(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.TodoResponse{}, ErrTodoNotFound
		}
		return model.TodoResponse{}, err
	}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return model.TodoResponse{}, err
		}
		todo.Title = title
	}
	if req.Description != nil {
		description, err := validateDescription(*req.Description)
		if err != nil {
			return model.TodoResponse{}, err
		}
		todo.Description = description
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(model.DueDateFormat, *req.DueDate)
		if err != nil {
			return model.TodoResponse{}, ErrInvalidDueDate
		}
		todo.DueDate = dueDate
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return model.TodoResponse{}, err
		}
		todo.Status = *req.Status
	}

	if err := s.store.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.TodoResponse{}, ErrTodoNotFound
		}
		return model.TodoResponse{}, err
	}

	return todo.ToResponse(), nil
}

// Delete removes the owner's todo.
func (s *TodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	err := s.store.Delete(ctx, ownerID, todoID)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return err
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > 100 {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > 500 {
		return "", ErrDescriptionTooLong
	}
	return description, nil
}

func validateStatus(status string) error {
	if status != model.StatusIncomplete && status != model.StatusComplete {
		return ErrInvalidStatus
	}
	return nil
}
