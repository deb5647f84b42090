package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/stellar-client/models"
)

func TestFetchIngredientsReplacesCatalog(t *testing.T) {
	catalog := []models.Ingredient{testBun, testFilling, testSauce}
	api := &fakeAPI{
		getIngredients: func(ctx context.Context) ([]models.Ingredient, error) {
			return catalog, nil
		},
	}
	s, _ := newTestStore(api)

	assert.NoError(t, s.FetchIngredients(context.Background()))

	assert.Len(t, s.Ingredients(), 3)
	assert.False(t, s.IsIngredientsLoading())
	assert.False(t, s.IngredientsLastUpdated().IsZero())
	assert.Empty(t, s.IngredientsError())
}

func TestFetchIngredientsRejected(t *testing.T) {
	api := &fakeAPI{
		getIngredients: func(ctx context.Context) ([]models.Ingredient, error) {
			return nil, errors.New("")
		},
	}
	s, _ := newTestStore(api)

	assert.Error(t, s.FetchIngredients(context.Background()))
	assert.Equal(t, defaultIngredientsError, s.IngredientsError())
	assert.Empty(t, s.Ingredients())
}

func TestIngredientByID(t *testing.T) {
	api := &fakeAPI{
		getIngredients: func(ctx context.Context) ([]models.Ingredient, error) {
			return []models.Ingredient{testBun, testSauce}, nil
		},
	}
	s, _ := newTestStore(api)
	assert.NoError(t, s.FetchIngredients(context.Background()))

	item, ok := s.IngredientByID("sauce-1")
	assert.True(t, ok)
	assert.Equal(t, "Space sauce", item.Name)

	_, ok = s.IngredientByID("nope")
	assert.False(t, ok)
}

func TestResetIngredients(t *testing.T) {
	api := &fakeAPI{
		getIngredients: func(ctx context.Context) ([]models.Ingredient, error) {
			return []models.Ingredient{testBun}, nil
		},
	}
	s, _ := newTestStore(api)
	assert.NoError(t, s.FetchIngredients(context.Background()))

	s.ResetIngredients()

	assert.Empty(t, s.Ingredients())
	assert.True(t, s.IngredientsLastUpdated().IsZero())
}

func TestClearIngredientsError(t *testing.T) {
	api := &fakeAPI{
		getIngredients: func(ctx context.Context) ([]models.Ingredient, error) {
			return nil, errors.New("down")
		},
	}
	s, _ := newTestStore(api)
	assert.Error(t, s.FetchIngredients(context.Background()))

	s.ClearIngredientsError()
	assert.Empty(t, s.IngredientsError())
}
