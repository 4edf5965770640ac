package ui

import (
	"lexibar/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// clipboardMsg contains the result of a copy to the clipboard
type clipboardMsg struct {
	word string
	err  error
}

// statusClearMsg clears the status line unless a newer message replaced it
type statusClearMsg struct {
	seq int
}
