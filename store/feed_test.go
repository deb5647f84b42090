package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/stellar-client/models"
)

func TestFetchFeedReplacesSnapshot(t *testing.T) {
	page := models.FeedPage{
		Orders: []models.Order{
			{ID: "o2", Number: 2},
			{ID: "o1", Number: 1},
		},
		Total:      120,
		TotalToday: 12,
	}
	var pendingSeen bool

	api := &fakeAPI{}
	s, _ := newTestStore(api)
	api.getFeed = func(ctx context.Context) (models.FeedPage, error) {
		pendingSeen = s.IsFeedLoading()
		return page, nil
	}

	assert.NoError(t, s.FetchFeed(context.Background()))

	assert.True(t, pendingSeen)
	assert.False(t, s.IsFeedLoading())
	assert.Len(t, s.FeedOrders(), 2)
	assert.Equal(t, 120, s.TotalOrders())
	assert.Equal(t, 12, s.TotalToday())
	assert.False(t, s.FeedLastUpdated().IsZero())
	assert.Empty(t, s.FeedError())
}

func TestFetchFeedRejected(t *testing.T) {
	api := &fakeAPI{
		getFeed: func(ctx context.Context) (models.FeedPage, error) {
			return models.FeedPage{}, errors.New("")
		},
	}
	s, _ := newTestStore(api)

	err := s.FetchFeed(context.Background())

	assert.Error(t, err)
	assert.False(t, s.IsFeedLoading())
	assert.Equal(t, defaultFeedError, s.FeedError())
	assert.True(t, s.FeedLastUpdated().IsZero())
}

func TestFetchFeedPendingClearsError(t *testing.T) {
	calls := 0
	api := &fakeAPI{
		getFeed: func(ctx context.Context) (models.FeedPage, error) {
			calls++
			if calls == 1 {
				return models.FeedPage{}, errors.New("flaky")
			}
			return models.FeedPage{Total: 1}, nil
		},
	}
	s, _ := newTestStore(api)

	assert.Error(t, s.FetchFeed(context.Background()))
	assert.Equal(t, "flaky", s.FeedError())

	assert.NoError(t, s.FetchFeed(context.Background()))
	assert.Empty(t, s.FeedError())
}

func TestFetchOrderByNumberKeepsFirstResult(t *testing.T) {
	api := &fakeAPI{
		getByNumber: func(ctx context.Context, number int) ([]models.Order, error) {
			assert.Equal(t, 42, number)
			return []models.Order{{ID: "o42", Number: 42}, {ID: "dup", Number: 42}}, nil
		},
	}
	s, _ := newTestStore(api)

	assert.NoError(t, s.FetchOrderByNumber(context.Background(), 42))

	selected := s.SelectedOrder()
	assert.NotNil(t, selected)
	assert.Equal(t, "o42", selected.ID)
	assert.False(t, s.IsOrderDetailsLoading())
}

func TestFetchOrderByNumberEmptyResultIsNotFound(t *testing.T) {
	api := &fakeAPI{
		getByNumber: func(ctx context.Context, number int) ([]models.Order, error) {
			return []models.Order{}, nil
		},
	}
	s, _ := newTestStore(api)

	err := s.FetchOrderByNumber(context.Background(), 9999)

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, s.SelectedOrder(), "an empty result set must not store anything")
	assert.Equal(t, "order not found", s.FeedError())
	assert.False(t, s.IsOrderDetailsLoading())
}

func TestFetchOrderByNumberRejectedFallsBackToDefault(t *testing.T) {
	api := &fakeAPI{
		getByNumber: func(ctx context.Context, number int) ([]models.Order, error) {
			return nil, errors.New("")
		},
	}
	s, _ := newTestStore(api)

	assert.Error(t, s.FetchOrderByNumber(context.Background(), 1))
	assert.Equal(t, defaultOrderLookupError, s.FeedError())
}

func TestFeedLifecyclesUseSeparateLoadingFlags(t *testing.T) {
	var detailsDuringFeed bool
	api := &fakeAPI{}
	s, _ := newTestStore(api)
	api.getFeed = func(ctx context.Context) (models.FeedPage, error) {
		detailsDuringFeed = s.IsOrderDetailsLoading()
		return models.FeedPage{}, nil
	}

	assert.NoError(t, s.FetchFeed(context.Background()))
	assert.False(t, detailsDuringFeed, "the by-number flag must not follow the feed lifecycle")
}

func TestClearFeedErrorAndResetSelectedOrder(t *testing.T) {
	api := &fakeAPI{
		getByNumber: func(ctx context.Context, number int) ([]models.Order, error) {
			return []models.Order{{ID: "o1", Number: 1}}, nil
		},
	}
	s, _ := newTestStore(api)
	assert.NoError(t, s.FetchOrderByNumber(context.Background(), 1))
	s.SetOrderError("unrelated")

	s.ClearFeedError()
	assert.Empty(t, s.FeedError())

	s.ResetSelectedOrder()
	assert.Nil(t, s.SelectedOrder())
}
