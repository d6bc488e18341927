package maintenance

import "errors"

var (
	ErrNotFound      = errors.New("maintenance record not found")
	ErrInvalidStatus = errors.New("unknown step status")
	// ErrStepDone guards re-opening or re-completing a done step; it is also
	// what makes the attribute-change apply idempotent at the step level.
	ErrStepDone = errors.New("step is already done")
	// ErrRequestClosed means the item request already reached a terminal state.
	ErrRequestClosed = errors.New("item request already fulfilled or rejected")
	ErrItemMismatch  = errors.New("fulfillment item does not match request type")
	// ErrInvalidTarget covers bad target types on attribute changes and
	// item-request kinds outside stock_item/consumable.
	ErrInvalidTarget = errors.New("invalid target type")
	ErrKindMismatch  = errors.New("value kind does not match attribute definition")
)
