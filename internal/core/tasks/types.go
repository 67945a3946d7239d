package tasks

import "errors"

var (
	// ErrNotFound indicates no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyText indicates a task was submitted without text.
	ErrEmptyText = errors.New("task text is empty")
)

// Category groups tasks on the dashboard.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryHome     Category = "home"
	CategoryShopping Category = "shopping"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryPersonal, CategoryWork, CategoryHome, CategoryShopping}

// ParseCategory returns the matching category or CategoryPersonal.
func ParseCategory(value string) Category {
	for _, category := range Categories {
		if string(category) == value {
			return category
		}
	}
	return CategoryPersonal
}

// Emoji returns the badge shown next to a task of this category.
func (category Category) Emoji() string {
	switch category {
	case CategoryWork:
		return "💼"
	case CategoryHome:
		return "🏠"
	case CategoryShopping:
		return "🛒"
	default:
		return "🪙"
	}
}

// Task is a single to-do entry.
type Task struct {
	ID        string
	Text      string
	Category  Category
	Completed bool
}

// Filter selects which tasks are listed.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Match reports whether a task passes the filter.
func (filter Filter) Match(task Task) bool {
	switch filter {
	case FilterActive:
		return !task.Completed
	case FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

// Stats summarises progress for the dashboard.
type Stats struct {
	Total     int
	Completed int
	Active    int
	Percent   int
}
