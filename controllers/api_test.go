package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/configs"
	"github.com/ozadencsevda/restaurant-api/entity"
	"github.com/ozadencsevda/restaurant-api/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		AppName:    "RestaurantAPI",
		AppVersion: "1.0",
		AppEnv:     "test",
		DBDriver:   "sqlite",
		JWTSecret:  "test-secret",
		JWTTTL:     time.Hour,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, admin bool) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := entity.User{Email: email, Password: string(hash), IsAdmin: admin}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK, "body: %s", w.Body.String())
	return envelope.Data
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool             `json:"ok"`
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK, "body: %s", w.Body.String())
	return envelope.Data
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "Eve@Example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.NotEmpty(t, data["access_token"])

	// duplicate registration conflicts
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "eve@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := login(t, r, "eve@example.com", "secret1")
	w = doJSON(t, r, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeData(t, w)
	assert.Equal(t, "eve@example.com", me["email"])
	assert.Equal(t, false, me["is_admin"])
}

func TestAuthGuards(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "user@example.com", "secret1", false)
	token := login(t, r, "user@example.com", "secret1")

	// no token
	w := doJSON(t, r, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = doJSON(t, r, http.MethodGet, "/api/v1/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// authenticated but not admin
	w = doJSON(t, r, http.MethodPost, "/api/v1/categories", token, gin.H{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// wrong credentials
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "user@example.com", "password": "wrong!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The register → login → category → item → featured flow from end to end.
func TestMenuLifecycle(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Desserts"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cat := decodeData(t, w)
	catID := uint(cat["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{
		"name": "Cake", "price": 10, "category_id": catID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decodeData(t, w)
	itemID := uint(item["id"].(float64))
	assert.Equal(t, "Desserts", item["category"].(map[string]any)["name"])
	assert.Equal(t, false, item["is_featured"])

	// detail view carries the category
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/menu-items/%d", itemID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// listing denormalizes the category name
	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Desserts", list[0]["category_name"])

	// feature it via PATCH — plain auth is enough
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), admin, gin.H{"is_featured": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	featured := decodeList(t, w)
	require.Len(t, featured, 1)
	assert.Equal(t, "Cake", featured[0]["name"])
}

func TestFeaturedToggleNeedsAuthOnly(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	seedUser(t, db, "user@example.com", "secret1", false)
	admin := login(t, r, "admin@example.com", "admin11")
	user := login(t, r, "user@example.com", "secret1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Mains"})
	require.Equal(t, http.StatusCreated, w.Code)
	catID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{"name": "Pizza", "price": 12, "category_id": catID})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(decodeData(t, w)["id"].(float64))

	// a plain user can toggle featured
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), user, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// repeating is idempotent
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), user, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), user, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), user, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// but an anonymous caller cannot
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/menu-items/%d/featured", itemID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// and a plain user still cannot delete the item itself
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/menu-items/%d", itemID), user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCategoryDeleteConflict(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Desserts"})
	require.Equal(t, http.StatusCreated, w.Code)
	catID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{"name": "Cake", "price": 10, "category_id": catID})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(decodeData(t, w)["id"].(float64))

	// blocked while the item exists
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", catID), admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d", catID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// delete the item, then the category goes through
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/menu-items/%d", itemID), admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", catID), admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestItemPartialUpdateOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Mains"})
	catID := uint(decodeData(t, w)["id"].(float64))
	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{
		"name": "Burger", "price": 15, "category_id": catID, "calories": 800,
	})
	itemID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/menu-items/%d", itemID), admin, gin.H{"price": 17.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeData(t, w)
	assert.Equal(t, "Burger", got["name"])
	assert.Equal(t, 17.5, got["price"])
	assert.Equal(t, float64(800), got["calories"])
}

func TestSuggestEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Desserts"})
	catID := uint(decodeData(t, w)["id"].(float64))
	for _, name := range []string{"Cake", "Candy", "Chocolate Cake"} {
		w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{"name": name, "price": 5, "category_id": catID})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/suggest?q=Ca&limit=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeList(t, w)
	require.Len(t, got, 3)
	assert.Equal(t, "Cake", got[0]["name"])
	assert.Equal(t, "Candy", got[1]["name"])
	assert.Equal(t, "Chocolate Cake", got[2]["name"])

	// q is required
	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/suggest", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", admin, gin.H{"name": "Mains"})
	catID := uint(decodeData(t, w)["id"].(float64))
	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{"name": "Veggie Wrap", "price": 6, "category_id": catID, "is_vegetarian": true})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items", admin, gin.H{"name": "Beef Wrap", "price": 11, "category_id": catID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/search?q=wrap&sort_by=price&sort_dir=desc", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeList(t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "Beef Wrap", got[0]["name"])

	// minimum query length is enforced
	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/search?q=w", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndInfo(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "someone@example.com", "secret1", false)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["api"])
	assert.Equal(t, "ok", health["database"])
	assert.Equal(t, float64(1), health["total_users"])

	w = doJSON(t, r, http.MethodGet, "/api/info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestNotFoundResponses(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "admin@example.com", "admin11", true)
	admin := login(t, r, "admin@example.com", "admin11")

	w := doJSON(t, r, http.MethodGet, "/api/v1/categories/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/menu-items/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/menu-items/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/menu-items/999/featured", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
