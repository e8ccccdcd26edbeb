package task

import "time"

// Task is a personal to-do item with an optional reminder offset before its
// due date.
type Task struct {
	ID              string
	Title           string
	DueDate         *time.Time
	ReminderMinutes int
	IsCompleted     bool
}
