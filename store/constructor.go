package store

import (
	"time"

	"github.com/yeremiapane/stellar-client/models"
)

// constructorState is the burger under construction: at most one bun plus
// an ordered, user-controlled list of fillings.
type constructorState struct {
	bun          *models.ConstructorIngredient
	fillings     []models.ConstructorIngredient
	errorMessage string
	lastUpdated  time.Time
}

// moveItem relocates the filling at from to to, preserving the relative
// order of everything else. Any out-of-range index leaves the list as is.
func moveItem(fillings []models.ConstructorIngredient, from, to int) []models.ConstructorIngredient {
	if from < 0 || from >= len(fillings) || to < 0 || to >= len(fillings) {
		return fillings
	}
	out := make([]models.ConstructorIngredient, 0, len(fillings))
	out = append(out, fillings[:from]...)
	out = append(out, fillings[from+1:]...)
	moved := fillings[from]
	out = append(out[:to], append([]models.ConstructorIngredient{moved}, out[to:]...)...)
	return out
}

// AddIngredient places a catalog item into the constructor. A bun replaces
// the current bun; anything else is appended to the fillings with a fresh
// instance id.
func (s *Store) AddIngredient(item models.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := models.ConstructorIngredient{Ingredient: item, InstanceID: s.genID()}
	if item.IsBun() {
		s.constructor.bun = &placed
	} else {
		s.constructor.fillings = append(s.constructor.fillings, placed)
	}
	s.constructor.lastUpdated = s.now()
}

// MoveIngredient reorders the fillings. Invalid indices are a silent no-op.
func (s *Store) MoveIngredient(fromIndex, toIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.constructor.fillings = moveItem(s.constructor.fillings, fromIndex, toIndex)
	s.constructor.lastUpdated = s.now()
}

// RemoveIngredient deletes the filling with the given instance id. Removing
// an id that is not present is a silent no-op; the bun is never affected.
func (s *Store) RemoveIngredient(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.constructor.fillings[:0]
	for _, f := range s.constructor.fillings {
		if f.InstanceID != instanceID {
			kept = append(kept, f)
		}
	}
	s.constructor.fillings = kept
	s.constructor.lastUpdated = s.now()
}

// ResetConstructor clears the bun and all fillings in one transition. The
// stamped timestamp doubles as the release signal consumed after submission.
func (s *Store) ResetConstructor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.constructor.bun = nil
	s.constructor.fillings = nil
	s.constructor.lastUpdated = s.now()
}

// SetConstructorError records an out-of-band constructor error.
func (s *Store) SetConstructorError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.constructor.errorMessage = message
}

// Bun returns a copy of the current bun, or nil.
func (s *Store) Bun() *models.ConstructorIngredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.constructor.bun == nil {
		return nil
	}
	cp := *s.constructor.bun
	return &cp
}

// Fillings returns a copy of the ordered filling list.
func (s *Store) Fillings() []models.ConstructorIngredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ConstructorIngredient(nil), s.constructor.fillings...)
}

// TotalPrice recomputes the derived price on every read: two units of bun
// plus every filling. Never cached, never patched incrementally.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	if s.constructor.bun != nil {
		total += s.constructor.bun.Price * 2
	}
	for _, f := range s.constructor.fillings {
		total += f.Price
	}
	return total
}

// ConstructorError returns the out-of-band constructor error, if any.
func (s *Store) ConstructorError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constructor.errorMessage
}

// ConstructorLastUpdated returns the last modification stamp; the zero time
// means the constructor has never been touched.
func (s *Store) ConstructorLastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constructor.lastUpdated
}
