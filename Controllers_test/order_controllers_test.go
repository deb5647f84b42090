package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func catalogIDs(t *testing.T, resp map[string]any) (bun string, main string) {
	data := resp["data"].([]any)
	assert.NotEmpty(t, data)
	for _, raw := range data {
		item := raw.(map[string]any)
		switch item["type"] {
		case "bun":
			if bun == "" {
				bun = item["_id"].(string)
			}
		case "main":
			if main == "" {
				main = item["_id"].(string)
			}
		}
	}
	assert.NotEmpty(t, bun)
	assert.NotEmpty(t, main)
	return bun, main
}

func TestGetAllIngredients(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := doJSON(t, r, "GET", "/api/ingredients", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["data"])
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := doJSON(t, r, "POST", "/api/orders", map[string]any{
		"ingredients": []string{"whatever"},
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestCreateOrderAndLookups(t *testing.T) {
	r := setupTestRouter(t)
	access, _ := registerTestUser(t, r)

	_, catalog := doJSON(t, r, "GET", "/api/ingredients", nil, "")
	bun, main := catalogIDs(t, catalog)

	w, resp := doJSON(t, r, "POST", "/api/orders", map[string]any{
		"ingredients": []string{bun, main, bun},
	}, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	order := resp["order"].(map[string]any)
	number := int(order["number"].(float64))
	assert.Greater(t, number, 0)
	assert.NotEmpty(t, order["name"])
	assert.Len(t, order["ingredients"].([]any), 3)

	// The feed reflects the new order and its totals.
	w, feed := doJSON(t, r, "GET", "/api/orders/all", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), feed["total"])
	assert.Equal(t, float64(1), feed["totalToday"])
	assert.Len(t, feed["orders"].([]any), 1)

	// By-number lookup finds it.
	w, lookup := doJSON(t, r, "GET", "/api/orders/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, lookup["orders"].([]any), 1)

	// An unknown number is an empty result set, not an HTTP failure.
	w, missing := doJSON(t, r, "GET", "/api/orders/9999", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, missing["orders"])

	// The order shows up in the user's history.
	w, history := doJSON(t, r, "GET", "/api/orders", nil, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, history["orders"].([]any), 1)
}

func TestCreateOrderRejectsUnknownIngredient(t *testing.T) {
	r := setupTestRouter(t)
	access, _ := registerTestUser(t, r)

	w, resp := doJSON(t, r, "POST", "/api/orders", map[string]any{
		"ingredients": []string{"no-such-ingredient"},
	}, access)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestCreateOrderRejectsEmptyList(t *testing.T) {
	r := setupTestRouter(t)
	access, _ := registerTestUser(t, r)

	w, _ := doJSON(t, r, "POST", "/api/orders", map[string]any{
		"ingredients": []string{},
	}, access)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
