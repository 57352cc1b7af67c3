package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnregisteredItem      = errors.New("unregistered item")
	ErrIdentityMismatch      = errors.New("item identity mismatch")
	ErrGroupCapacityExceeded = errors.New("group capacity exceeded")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrNoSlotBinding         = errors.New("no slot binding")
	ErrUndefinedRequiredItem = errors.New("no item defined for slot")

	ErrGuiNotFound     = errors.New("gui not found")
	ErrAccountNotFound = errors.New("account not found")
)

// Rejection is a local, non-fatal refusal of one interaction. Notice is the text shown to the user
// and may be empty for silent rejections.
type Rejection struct {
	Kind   error
	Slot   int
	Notice string
}

func Reject(kind error, slot int, notice string) *Rejection {
	return &Rejection{Kind: kind, Slot: slot, Notice: notice}
}

func (r *Rejection) Error() string {
	if r.Notice == "" {
		return fmt.Sprintf("slot %d: %v", r.Slot, r.Kind)
	}
	return fmt.Sprintf("slot %d: %v: %s", r.Slot, r.Kind, r.Notice)
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}
