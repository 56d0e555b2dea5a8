package model

import "fmt"

// Action is a requested change to an Item. The set is closed.
type Action interface {
	action()
}

// ToggleDone flips DONE to PENDING and anything else to DONE.
type ToggleDone struct{}

// Cancel marks the item CANCELLED. Cancelling twice is a no-op.
type Cancel struct{}

// Destroy marks the item DESTROYED.
type Destroy struct{}

// SetStatus assigns a status directly.
type SetStatus struct{ Status Status }

// SetText replaces the item text.
type SetText struct{ Text string }

// SetVisible replaces the visibility flag.
type SetVisible struct{ Visible bool }

func (ToggleDone) action() {}
func (Cancel) action()     {}
func (Destroy) action()    {}
func (SetStatus) action()  {}
func (SetText) action()    {}
func (SetVisible) action() {}

// Apply returns the state after a. On error it returns it unchanged.
func Apply(it Item, a Action) (Item, error) {
	switch a := a.(type) {
	case ToggleDone:
		if it.Status == StatusDone {
			it.Status = StatusPending
		} else {
			it.Status = StatusDone
		}
	case Cancel:
		it.Status = StatusCancelled
	case Destroy:
		it.Status = StatusDestroyed
	case SetStatus:
		if !a.Status.Valid() {
			return it, fmt.Errorf("%s is not a valid status: %w", a.Status, ErrInvalidStatus)
		}
		it.Status = a.Status
	case SetText:
		it.Text = a.Text
	case SetVisible:
		it.Visible = a.Visible
	default:
		return it, fmt.Errorf("unknown action %T", a)
	}
	return it, nil
}

// Change is a bit set of the fields that differ between two states.
type Change uint8

const (
	ChangedText Change = 1 << iota
	ChangedStatus
	ChangedVisible
)

func (c Change) Has(f Change) bool { return c&f != 0 }

// Diff reports which fields differ between prev and next.
func Diff(prev, next Item) Change {
	var c Change
	if prev.Text != next.Text {
		c |= ChangedText
	}
	if prev.Status != next.Status {
		c |= ChangedStatus
	}
	if prev.Visible != next.Visible {
		c |= ChangedVisible
	}
	return c
}
