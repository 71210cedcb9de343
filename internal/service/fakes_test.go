package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the repository contract:
// store-assigned IDs and a uniqueness constraint on the stored email.
type fakeUserStore struct {
	users map[string]*model.User
	seq   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	s.seq++
	user.ID = fmt.Sprintf("user-%d", s.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

// fakeTodoStore is an in-memory TodoStore enforcing the same ownership
// filtering as the SQL repository.
type fakeTodoStore struct {
	todos map[string]*model.Todo
	seq   int
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[string]*model.Todo)}
}

func (s *fakeTodoStore) Create(_ context.Context, todo *model.Todo) error {
	s.seq++
	todo.ID = fmt.Sprintf("todo-%d", s.seq)
	// Monotonic timestamps keep list ordering deterministic.
	todo.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Second)
	todo.UpdatedAt = todo.CreatedAt

	stored := *todo
	s.todos[todo.ID] = &stored
	return nil
}

func (s *fakeTodoStore) GetByID(_ context.Context, ownerID, id string) (*model.Todo, error) {
	t, ok := s.todos[id]
	if !ok || t.OwnerID != ownerID {
		return nil, repository.ErrTodoNotFound
	}
	found := *t
	return &found, nil
}

func (s *fakeTodoStore) List(_ context.Context, ownerID string, filter repository.TodoFilter) ([]model.Todo, error) {
	var todos []model.Todo
	for _, t := range s.todos {
		if t.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		todos = append(todos, *t)
	}

	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (s *fakeTodoStore) Update(_ context.Context, todo *model.Todo) error {
	existing, ok := s.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return repository.ErrTodoNotFound
	}

	todo.CreatedAt = existing.CreatedAt
	todo.UpdatedAt = time.Now()
	stored := *todo
	s.todos[todo.ID] = &stored
	return nil
}

func (s *fakeTodoStore) Delete(_ context.Context, ownerID, id string) error {
	t, ok := s.todos[id]
	if !ok || t.OwnerID != ownerID {
		return repository.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}
