package store

import (
	"context"
	"time"

	"github.com/yeremiapane/stellar-client/models"
)

const defaultIngredientsError = "failed to load ingredients"

// ingredientsState mirrors the catalog fetched from the remote service.
type ingredientsState struct {
	items        []models.Ingredient
	isLoading    bool
	errorMessage string
	lastUpdated  time.Time
}

// FetchIngredients loads the catalog, replacing any previous snapshot.
func (s *Store) FetchIngredients(ctx context.Context) error {
	s.mu.Lock()
	s.ingredients.isLoading = true
	s.ingredients.errorMessage = ""
	s.mu.Unlock()

	items, err := s.api.GetIngredients(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients.isLoading = false
	if err != nil {
		s.ingredients.errorMessage = errMessage(err, defaultIngredientsError)
		return err
	}
	s.ingredients.items = items
	s.ingredients.lastUpdated = s.now()
	return nil
}

// ClearIngredientsError drops the catalog error message.
func (s *Store) ClearIngredientsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients.errorMessage = ""
}

// ResetIngredients returns the catalog slice to its initial state.
func (s *Store) ResetIngredients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients = ingredientsState{}
}

// Ingredients returns a copy of the catalog.
func (s *Store) Ingredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ingredient(nil), s.ingredients.items...)
}

// IngredientByID finds a catalog item by identity.
func (s *Store) IngredientByID(id string) (models.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.ingredients.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Ingredient{}, false
}

func (s *Store) IsIngredientsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ingredients.isLoading
}

func (s *Store) IngredientsError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ingredients.errorMessage
}

func (s *Store) IngredientsLastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ingredients.lastUpdated
}
