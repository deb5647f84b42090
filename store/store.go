// Package store is the client-side state container of the burger ordering
// app. It composes five slices (ingredients, constructor, order, feed, user)
// behind one mutex so that every transition applies atomically, and exposes
// read-only selectors for the presentation layer.
//
// Remote calls are the only suspension points: an async operation records
// its pending transition, releases the lock while the API call runs, then
// records the settled transition. Two concurrent calls to the same lifecycle
// are not serialized here; whichever settles last wins, and callers are
// expected to gate on the loading flag before issuing a new call.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/stellar-client/models"
)

// API is the remote-service collaborator consumed by the async lifecycles.
type API interface {
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetFeed(ctx context.Context) (models.FeedPage, error)
	GetOrderByNumber(ctx context.Context, number int) ([]models.Order, error)
	CreateOrder(ctx context.Context, ingredientIDs []string) (models.Order, error)
	Login(ctx context.Context, data models.LoginData) (models.AuthSession, error)
	Register(ctx context.Context, data models.RegisterData) (models.AuthSession, error)
	GetUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error)
	Logout(ctx context.Context) error
	GetUserOrders(ctx context.Context) ([]models.Order, error)
}

// TokenStore is the credential-storage collaborator. The store only ever
// sets both tokens together or clears both together.
type TokenStore interface {
	SetTokens(accessToken, refreshToken string) error
	ClearTokens() error
}

// Store holds the whole client state tree. Construct one per process (or
// per test) with New; there is no shared global instance.
type Store struct {
	mu     sync.Mutex
	api    API
	tokens TokenStore
	genID  func() string
	now    func() time.Time

	ingredients ingredientsState
	constructor constructorState
	order       orderState
	feed        feedState
	user        userState
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithIDGenerator replaces the instance-identifier generator used when an
// ingredient is placed into the constructor.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.genID = fn }
}

// WithClock replaces the time source used for last-updated stamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New builds a Store wired to the given remote API and token store.
func New(api API, tokens TokenStore, opts ...Option) *Store {
	s := &Store{
		api:    api,
		tokens: tokens,
		genID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// errMessage extracts a human-readable message from a settled failure,
// falling back to the lifecycle's fixed default.
func errMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func copyOrder(o *models.Order) *models.Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Ingredients = append([]string(nil), o.Ingredients...)
	return &cp
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i := range orders {
		out[i] = orders[i]
		out[i].Ingredients = append([]string(nil), orders[i].Ingredients...)
	}
	return out
}
