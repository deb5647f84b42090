package store

import (
	"context"
	"errors"

	"github.com/yeremiapane/stellar-client/models"
)

// defaultOrderError is the fallback message when a submission fails without
// carrying one of its own.
const defaultOrderError = "failed to place order"

// Submission preconditions surfaced by SubmitConstruction.
var (
	ErrNotAuthenticated = errors.New("you must be logged in")
	ErrBunRequired      = errors.New("a bun is required to place an order")
	ErrSubmitInFlight   = errors.New("an order submission is already in flight")
)

// orderState tracks the order-submission lifecycle: idle, submitting,
// submitted (currentOrder set) or failed (errorMessage set).
type orderState struct {
	currentOrder *models.Order
	isSubmitting bool
	errorMessage string
}

// SubmitOrder runs the submission lifecycle for an already-built identity
// list. The pending transition applies before the remote call; the settled
// transition applies when it returns. A rejected settlement keeps any
// previously stored order.
func (s *Store) SubmitOrder(ctx context.Context, ingredientIDs []string) error {
	s.mu.Lock()
	s.order.isSubmitting = true
	s.order.errorMessage = ""
	s.mu.Unlock()

	order, err := s.api.CreateOrder(ctx, ingredientIDs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.isSubmitting = false
	if err != nil {
		s.order.errorMessage = errMessage(err, defaultOrderError)
		return err
	}
	s.order.currentOrder = &order
	s.order.errorMessage = ""
	return nil
}

// SubmitConstruction submits the burger currently in the constructor. It is
// the consuming boundary over the constructor, user and order slices: it
// requires an authenticated session and a bun, refuses to start while a
// submission is in flight, and builds the wire list with the bun bookending
// the fillings (the two-units-of-bun rule).
func (s *Store) SubmitConstruction(ctx context.Context) error {
	s.mu.Lock()
	if !s.user.isAuthenticated {
		s.order.errorMessage = ErrNotAuthenticated.Error()
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	if s.constructor.bun == nil {
		s.order.errorMessage = ErrBunRequired.Error()
		s.mu.Unlock()
		return ErrBunRequired
	}
	if s.order.isSubmitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	ids := make([]string, 0, len(s.constructor.fillings)+2)
	ids = append(ids, s.constructor.bun.ID)
	for _, f := range s.constructor.fillings {
		ids = append(ids, f.ID)
	}
	ids = append(ids, s.constructor.bun.ID)
	s.mu.Unlock()

	return s.SubmitOrder(ctx, ids)
}

// ResetOrderState returns the submission lifecycle to idle, discarding both
// the stored order and any error.
func (s *Store) ResetOrderState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = orderState{}
}

// SetOrderError injects an error without going through the async path.
func (s *Store) SetOrderError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.errorMessage = message
}

// IsSubmitting reports whether a submission is in flight. Callers must
// check it before issuing a new submission; the lifecycle itself does not
// deduplicate concurrent calls.
func (s *Store) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.isSubmitting
}

// CurrentOrder returns a copy of the last successfully submitted order.
func (s *Store) CurrentOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrder(s.order.currentOrder)
}

// OrderError returns the submission error message, if any.
func (s *Store) OrderError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.errorMessage
}
