// Package api is the HTTP transport client for the burger ordering
// service. It implements the remote-operation contracts the state core
// consumes, and transparently refreshes an expired access token once
// before retrying an authorized request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// TokenSource is the credential store the client reads tokens from and
// writes refreshed pairs back to.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(accessToken, refreshToken string) error
}

// ErrUnauthorized is returned when a request stays unauthorized after a
// refresh attempt.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to one burger API deployment.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient builds a client for the API rooted at baseURL (including the
// /api prefix, no trailing slash).
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// do runs one JSON request. When authorized is set, the current access
// token is attached and an unauthorized answer triggers a single
// refresh-and-retry.
func (c *Client) do(ctx context.Context, method, path string, body any, authorized bool, out any) error {
	if !authorized {
		return c.doOnce(ctx, method, path, body, "", out)
	}

	err := c.doOnce(ctx, method, path, body, c.tokens.AccessToken(), out)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if rerr := c.refreshTokens(ctx); rerr != nil {
		return rerr
	}
	return c.doOnce(ctx, method, path, body, c.tokens.AccessToken(), out)
}

func (c *Client) doOnce(ctx context.Context, method, path string, body any, authorization string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}

	// Only token-bearing requests are retried on an unauthorized answer; a
	// failed login keeps its own message.
	if authorization != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		utils.InfoLogger.Printf("authorization rejected for %s %s: %s", method, path, env.Message)
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return fmt.Errorf("request to %s failed with status %d", path, resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// refreshTokens rotates the token pair using the stored refresh token.
func (c *Client) refreshTokens(ctx context.Context) error {
	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		return ErrUnauthorized
	}

	var resp refreshResponse
	if err := c.doOnce(ctx, http.MethodPost, "/auth/token", tokenRequest{Token: refresh}, "", &resp); err != nil {
		return err
	}
	return c.tokens.SetTokens(resp.AccessToken, resp.RefreshToken)
}

// GetIngredients fetches the full catalog.
func (c *Client) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var resp ingredientsResponse
	if err := c.do(ctx, http.MethodGet, "/ingredients", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetFeed fetches the public order feed with its running totals.
func (c *Client) GetFeed(ctx context.Context) (models.FeedPage, error) {
	var resp feedResponse
	if err := c.do(ctx, http.MethodGet, "/orders/all", nil, false, &resp); err != nil {
		return models.FeedPage{}, err
	}
	return models.FeedPage{
		Orders:     resp.Orders,
		Total:      resp.Total,
		TotalToday: resp.TotalToday,
	}, nil
}

// GetOrderByNumber looks an order up by its display number. The result set
// may be empty.
func (c *Client) GetOrderByNumber(ctx context.Context, number int) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", number), nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CreateOrder submits an ordered identity list and returns the
// authoritative order the service created.
func (c *Client) CreateOrder(ctx context.Context, ingredientIDs []string) (models.Order, error) {
	var resp orderResponse
	err := c.do(ctx, http.MethodPost, "/orders", createOrderRequest{Ingredients: ingredientIDs}, true, &resp)
	if err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// Login authenticates and returns the session with its token pair.
func (c *Client) Login(ctx context.Context, data models.LoginData) (models.AuthSession, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", data, false, &resp); err != nil {
		return models.AuthSession{}, err
	}
	return resp.session(), nil
}

// Register creates an account and returns the fresh session.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (models.AuthSession, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", data, false, &resp); err != nil {
		return models.AuthSession{}, err
	}
	return resp.session(), nil
}

// GetUser fetches the profile behind the stored tokens.
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, true, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// UpdateUser patches the profile.
func (c *Client) UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPatch, "/auth/user", patch, true, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// Logout invalidates the refresh token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", tokenRequest{Token: c.tokens.RefreshToken()}, false, nil)
}

// GetUserOrders fetches the authenticated user's order history.
func (c *Client) GetUserOrders(ctx context.Context) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
