package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a malformed numeric value (a negative price)
// reaching a pure computation. This indicates an upstream data bug; it is
// never clamped or defaulted away.
type InvalidInputError struct {
	TourID       string
	TicketTypeID string
	CategoryID   string
	Price        float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: negative price %v for ticket type %s category %s on tour %s",
		e.Price, e.TicketTypeID, e.CategoryID, e.TourID)
}

// DataIntegrityError reports referential inconsistency inside a tour's
// nested snapshot. It always identifies the offending tour and entity so
// the fault is attributable, rather than excluding the tour and silently
// corrupting pagination totals downstream.
type DataIntegrityError struct {
	TourID   string
	Entity   string
	EntityID string
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity fault on tour %s: %s %s: %s",
		e.TourID, e.Entity, e.EntityID, e.Reason)
}

// InvalidArgumentError reports caller-supplied pagination parameters
// outside their documented domain.
type InvalidArgumentError struct {
	Param string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s must be >= 1, got %d", e.Param, e.Value)
}

// UnknownTicketTypeError reports a booking selection referencing a ticket
// type that does not belong to the tour.
type UnknownTicketTypeError struct {
	TourID       string
	TicketTypeID string
}

func (e *UnknownTicketTypeError) Error() string {
	return fmt.Sprintf("unknown ticket type %s on tour %s", e.TicketTypeID, e.TourID)
}

// UnknownPriceCategoryError reports a (ticket type, category) pair with
// no price entry.
type UnknownPriceCategoryError struct {
	TicketTypeID string
	CategoryID   string
}

func (e *UnknownPriceCategoryError) Error() string {
	return fmt.Sprintf("no price entry for category %s on ticket type %s", e.CategoryID, e.TicketTypeID)
}

// InvalidQuantityError reports a non-positive requested quantity.
type InvalidQuantityError struct {
	TicketTypeID string
	CategoryID   string
	Quantity     int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for ticket type %s category %s",
		e.Quantity, e.TicketTypeID, e.CategoryID)
}

// CapacityExceededError reports a selection whose summed quantity for a
// ticket type exceeds its stated capacity. Requested and Available are
// both reported so the caller can surface the shortfall.
type CapacityExceededError struct {
	TicketTypeID string
	Requested    int
	Available    int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded for ticket type %s: requested %d, available %d",
		e.TicketTypeID, e.Requested, e.Available)
}

// IsNotFoundError reports whether err references an id absent from the
// tour snapshot.
func IsNotFoundError(err error) bool {
	var unknownType *UnknownTicketTypeError
	var unknownCategory *UnknownPriceCategoryError
	return errors.As(err, &unknownType) || errors.As(err, &unknownCategory)
}

// IsValidationError reports whether err was caused by out-of-domain
// caller input.
func IsValidationError(err error) bool {
	var invalidArg *InvalidArgumentError
	var invalidQty *InvalidQuantityError
	return errors.As(err, &invalidArg) || errors.As(err, &invalidQty)
}

// IsConflictError reports whether err is a capacity conflict.
func IsConflictError(err error) bool {
	var capacity *CapacityExceededError
	return errors.As(err, &capacity)
}
