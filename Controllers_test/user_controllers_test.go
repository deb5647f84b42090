package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/database"
	"github.com/yeremiapane/stellar-client/router"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	assert.NoError(t, database.Migrate(db))
	assert.NoError(t, database.SeedIngredients(db))
	return router.SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any, token string) (*httptest.ResponseRecorder, map[string]any) {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func registerTestUser(t *testing.T, r *gin.Engine) (accessToken, refreshToken string) {
	w, resp := doJSON(t, r, "POST", "/api/auth/register", map[string]string{
		"email":    "ann@example.com",
		"password": "hunter2",
		"name":     "Ann",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	return resp["accessToken"].(string), resp["refreshToken"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupTestRouter(t)
	access, refresh := registerTestUser(t, r)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	w, resp := doJSON(t, r, "POST", "/api/auth/login", map[string]string{
		"email":    "ann@example.com",
		"password": "hunter2",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	user := resp["user"].(map[string]any)
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "ann@example.com", user["email"])
}

func TestLoginWithWrongPassword(t *testing.T) {
	r := setupTestRouter(t)
	registerTestUser(t, r)

	w, resp := doJSON(t, r, "POST", "/api/auth/login", map[string]string{
		"email":    "ann@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "invalid credentials", resp["message"])
}

func TestDuplicateRegistration(t *testing.T) {
	r := setupTestRouter(t)
	registerTestUser(t, r)

	w, resp := doJSON(t, r, "POST", "/api/auth/register", map[string]string{
		"email":    "ann@example.com",
		"password": "other",
		"name":     "Ann Again",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestProfileRequiresToken(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := doJSON(t, r, "GET", "/api/auth/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestGetAndPatchProfile(t *testing.T) {
	r := setupTestRouter(t)
	access, _ := registerTestUser(t, r)

	w, resp := doJSON(t, r, "GET", "/api/auth/user", nil, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ann", resp["user"].(map[string]any)["name"])

	w, resp = doJSON(t, r, "PATCH", "/api/auth/user", map[string]string{
		"name": "Annette",
	}, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Annette", resp["user"].(map[string]any)["name"])
}

func TestRefreshRotatesTokenPair(t *testing.T) {
	r := setupTestRouter(t)
	_, refresh := registerTestUser(t, r)

	w, resp := doJSON(t, r, "POST", "/api/auth/token", map[string]string{"token": refresh}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	newRefresh := resp["refreshToken"].(string)
	assert.NotEmpty(t, resp["accessToken"])
	assert.NotEqual(t, refresh, newRefresh)

	// The old refresh token must be dead after rotation.
	w, _ = doJSON(t, r, "POST", "/api/auth/token", map[string]string{"token": refresh}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	r := setupTestRouter(t)
	_, refresh := registerTestUser(t, r)

	w, _ := doJSON(t, r, "POST", "/api/auth/logout", map[string]string{"token": refresh}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "POST", "/api/auth/token", map[string]string{"token": refresh}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
