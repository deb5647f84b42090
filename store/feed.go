package store

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/stellar-client/models"
)

// Fallback messages for the two feed lifecycles.
const (
	defaultFeedError        = "failed to load order feed"
	defaultOrderLookupError = "failed to load order"
)

// ErrOrderNotFound is the not-found condition: the by-number lookup settled
// successfully but with an empty result set.
var ErrOrderNotFound = errors.New("order not found")

// feedState holds the public order feed and the single looked-up order.
// The two lifecycles keep separate loading flags so a feed page and an
// order-detail page can load independently.
type feedState struct {
	orders                []models.Order
	selectedOrder         *models.Order
	isFeedLoading         bool
	isOrderDetailsLoading bool
	totalOrders           int
	totalToday            int
	errorMessage          string
	lastUpdated           time.Time
}

// FetchFeed replaces the feed list and both counters with a fresh snapshot.
func (s *Store) FetchFeed(ctx context.Context) error {
	s.mu.Lock()
	s.feed.isFeedLoading = true
	s.feed.errorMessage = ""
	s.mu.Unlock()

	page, err := s.api.GetFeed(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.isFeedLoading = false
	if err != nil {
		s.feed.errorMessage = errMessage(err, defaultFeedError)
		return err
	}
	s.feed.orders = page.Orders
	s.feed.totalOrders = page.Total
	s.feed.totalToday = page.TotalToday
	s.feed.lastUpdated = s.now()
	return nil
}

// FetchOrderByNumber looks up a single order. An empty result set is a
// not-found failure, never a null success: selectedOrder stays nil and the
// error message is recorded.
func (s *Store) FetchOrderByNumber(ctx context.Context, number int) error {
	s.mu.Lock()
	s.feed.isOrderDetailsLoading = true
	s.feed.errorMessage = ""
	s.mu.Unlock()

	orders, err := s.api.GetOrderByNumber(ctx, number)
	if err == nil && len(orders) == 0 {
		err = ErrOrderNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.isOrderDetailsLoading = false
	if err != nil {
		s.feed.errorMessage = errMessage(err, defaultOrderLookupError)
		return err
	}
	// The service may in principle return several orders for one number;
	// only the first is kept.
	s.feed.selectedOrder = &orders[0]
	s.feed.lastUpdated = s.now()
	return nil
}

// ClearFeedError drops the feed error message. Local transition only.
func (s *Store) ClearFeedError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.errorMessage = ""
}

// ResetSelectedOrder drops the looked-up order. Local transition only.
func (s *Store) ResetSelectedOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.selectedOrder = nil
}

// FeedOrders returns a copy of the current feed snapshot.
func (s *Store) FeedOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.feed.orders)
}

// SelectedOrder returns a copy of the looked-up order, or nil.
func (s *Store) SelectedOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrder(s.feed.selectedOrder)
}

func (s *Store) IsFeedLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.isFeedLoading
}

func (s *Store) IsOrderDetailsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.isOrderDetailsLoading
}

func (s *Store) TotalOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.totalOrders
}

func (s *Store) TotalToday() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.totalToday
}

func (s *Store) FeedError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.errorMessage
}

func (s *Store) FeedLastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.lastUpdated
}
