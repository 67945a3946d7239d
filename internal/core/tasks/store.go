package tasks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory ordered task list.
type Store struct {
	mu    sync.RWMutex
	tasks []Task
	newID func() (string, error)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{newID: newTimeOrderedID}
}

// Seed fills the store with the starter tasks shown to a new user.
func (store *Store) Seed() error {
	starters := []struct {
		text      string
		category  Category
		completed bool
	}{
		{"Buy milk", CategoryShopping, false},
		{"Water the plants", CategoryHome, false},
		{"Call grandma", CategoryPersonal, true},
		{"Finish React project", CategoryWork, false},
	}
	for _, starter := range starters {
		task, err := store.Add(starter.text, starter.category)
		if err != nil {
			return err
		}
		if starter.completed {
			if _, _, err := store.Toggle(task.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// Add appends a new active task. Unknown categories become CategoryPersonal.
func (store *Store) Add(text string, category Category) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	id, err := store.newID()
	if err != nil {
		return Task{}, fmt.Errorf("generate task id: %w", err)
	}
	task := Task{
		ID:       id,
		Text:     text,
		Category: ParseCategory(string(category)),
	}

	store.mu.Lock()
	store.tasks = append(store.tasks, task)
	store.mu.Unlock()
	return task, nil
}

// Toggle flips the completion flag. The boolean result reports whether the
// task has just become completed.
func (store *Store) Toggle(id string) (Task, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return Task{}, false, ErrNotFound
	}
	store.tasks[index].Completed = !store.tasks[index].Completed
	task := store.tasks[index]
	return task, task.Completed, nil
}

// Delete removes a task.
func (store *Store) Delete(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return ErrNotFound
	}
	store.tasks = append(store.tasks[:index], store.tasks[index+1:]...)
	return nil
}

// Get returns a task by ID.
func (store *Store) Get(id string) (Task, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	index := store.indexLocked(id)
	if index < 0 {
		return Task{}, ErrNotFound
	}
	return store.tasks[index], nil
}

// List returns a copy of all tasks in insertion order.
func (store *Store) List() []Task {
	return store.Filter(FilterAll)
}

// Filter returns the tasks matching filter in insertion order.
func (store *Store) Filter(filter Filter) []Task {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]Task, 0, len(store.tasks))
	for _, task := range store.tasks {
		if filter.Match(task) {
			result = append(result, task)
		}
	}
	return result
}

// Stats counts total, completed and active tasks.
func (store *Store) Stats() Stats {
	store.mu.RLock()
	defer store.mu.RUnlock()

	stats := Stats{Total: len(store.tasks)}
	for _, task := range store.tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Active = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.Percent = stats.Completed * 100 / stats.Total
	}
	return stats
}

func (store *Store) indexLocked(id string) int {
	for index, task := range store.tasks {
		if task.ID == id {
			return index
		}
	}
	return -1
}

func newTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
