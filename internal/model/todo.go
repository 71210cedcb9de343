package model

import "time"

// DueDateFormat is the wire format for todo due dates.
const DueDateFormat = "2006-01-02"

// Todo statuses.
const (
	StatusIncomplete = "incomplete"
	StatusComplete   = "complete"
)

// Todo represents a to-do item in the database.
type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	DueDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoRequest represents a create request body. Status is optional
// and defaults to incomplete.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// UpdateTodoRequest represents a partial update. Pointer fields distinguish
// an omitted field (nil, keep current value) from an explicit one.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

// TodoResponse represents a to-do item in API responses.
type TodoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DataResponse is the generic success envelope for item endpoints.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ToResponse converts a Todo to its API shape.
func (t *Todo) ToResponse() TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(DueDateFormat),
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
