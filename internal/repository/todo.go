package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoFilter is the typed query filter for listing todos. A nil Status
// means no status restriction.
type TodoFilter struct {
	Status *string
}

// TodoRepository handles to-do item persistence. Every query carries the
// owner in its WHERE clause; a row owned by someone else is indistinguishable
// from a missing row.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const todoColumns = `id, owner_id, title, description, due_date, status, created_at, updated_at`

// Create inserts a new todo with a store-assigned ID and reloads the
// DB-managed timestamps.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (id, owner_id, title, description, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx, query, id, todo.OwnerID, todo.Title, todo.Description, todo.DueDate, todo.Status)
	if err != nil {
		return err
	}

	created, err := r.GetByID(ctx, todo.OwnerID, id)
	if err != nil {
		return err
	}

	*todo = *created
	return nil
}

// GetByID retrieves a todo by owner and ID.
func (r *TodoRepository) GetByID(ctx context.Context, ownerID, id string) (*model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND owner_id = ?`

	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
		&todo.DueDate, &todo.Status, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// buildListQuery assembles the list statement. The owner predicate is always
// present; the status predicate only when the filter sets one.
func buildListQuery(ownerID string, filter TodoFilter) (string, []any) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE owner_id = ?`
	args := []any{ownerID}

	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	return query, args
}

// List retrieves an owner's todos, newest first, optionally restricted by status.
func (r *TodoRepository) List(ctx context.Context, ownerID string, filter TodoFilter) ([]model.Todo, error) {
	query, args := buildListQuery(ownerID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &t.Description,
			&t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Update writes the mutable fields of a todo, scoped to its owner. MySQL
// reports zero affected rows for a value-identical update, so existence is
// checked by the reload rather than RowsAffected.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos SET title = ?, description = ?, due_date = ?, status = ?
		WHERE id = ? AND owner_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.DueDate, todo.Status,
		todo.ID, todo.OwnerID,
	)
	if err != nil {
		return err
	}

	updated, err := r.GetByID(ctx, todo.OwnerID, todo.ID)
	if err != nil {
		return err
	}

	*todo = *updated
	return nil
}

// Delete removes a todo. Hard delete, same ownership-blind not-found policy
// as Update.
func (r *TodoRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM todos WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
