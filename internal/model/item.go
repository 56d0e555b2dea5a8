package model

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/todolist/internal/valid"
)

// ErrInvalidStatus is returned when a value outside the Status set is assigned.
var ErrInvalidStatus = errors.New("invalid status")

// Status is the lifecycle state of a todo entry.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDone      Status = "DONE"
	StatusCancelled Status = "CANCELLED"
	StatusDestroyed Status = "DESTROYED"
)

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{StatusPending, StatusDone, StatusCancelled, StatusDestroyed}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDone, StatusCancelled, StatusDestroyed:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus guards untyped input (data attributes, script commands).
func ParseStatus(v any) (Status, error) {
	switch x := v.(type) {
	case Status:
		if x.Valid() {
			return x, nil
		}
	case string:
		if valid.IsValueOf(Status(x), Statuses()...) {
			return Status(x), nil
		}
	}
	return "", fmt.Errorf("%v is not a valid status: %w", v, ErrInvalidStatus)
}

// Item is the state of a todo entry. It holds no view; see Apply and Diff.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Status  Status `json:"status"`
	Visible bool   `json:"visible"`
}

// NewItem returns a pending, visible item.
func NewItem(id, text string) Item {
	return Item{ID: id, Text: text, Status: StatusPending, Visible: true}
}
