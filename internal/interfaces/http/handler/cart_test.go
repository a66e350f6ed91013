package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/shop/backend/internal/application/cart"
	"github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/interfaces/http/middleware"
)

// fakeCartStore is an in-memory cart.Store for handler tests
type fakeCartStore struct {
	mu     sync.Mutex
	byUser map[string]*cart.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{byUser: make(map[string]*cart.Cart)}
}

func (s *fakeCartStore) FindByUserID(ctx context.Context, userID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", cart.ErrCartNotFound, userID)
	}
	clone := *stored
	clone.Items = append([]cart.Item(nil), stored.Items...)
	return &clone, nil
}

func (s *fakeCartStore) FindGreatestID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var greatest string
	var greatestSeq uint64
	for _, c := range s.byUser {
		seq, err := cart.IDs.Parse(c.ID)
		if err != nil {
			return "", err
		}
		if seq > greatestSeq {
			greatest, greatestSeq = c.ID, seq
		}
	}
	return greatest, nil
}

func (s *fakeCartStore) Insert(ctx context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.byUser {
		if stored.ID == c.ID {
			return fmt.Errorf("%w: cart %s", shared.ErrAlreadyExists, c.ID)
		}
	}
	clone := *c
	clone.Items = append([]cart.Item(nil), c.Items...)
	s.byUser[c.UserID] = &clone
	return nil
}

func (s *fakeCartStore) ReplaceItems(ctx context.Context, userID string, items []cart.Item, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byUser[userID]
	if !ok {
		return fmt.Errorf("%w: user %s", cart.ErrCartNotFound, userID)
	}
	stored.Items = append([]cart.Item(nil), items...)
	stored.UpdatedAt = updatedAt
	return nil
}

func newCartTestRouter(store cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	engine := gin.New()
	h := NewCartHandler(cartapp.NewService(store))
	h.RegisterRoutes(engine.Group(""), func(c *gin.Context) { c.Next() })
	return engine
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestCartHandler_Get_EmptyState(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodGet, "/cart/U00001", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "U00001", data["userId"])
	assert.Empty(t, data["items"])
	_, hasID := data["id"]
	assert.False(t, hasID)
}

func TestCartHandler_AddItem_CreatesCart(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":2,"color":"black"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "CT00001", data["id"])
	items := data["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "P0001", line["productId"])
	assert.Equal(t, float64(2), line["quantity"])
}

func TestCartHandler_AddItem_MergesSameVariant(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":2,"color":"black"}`)
	w := doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":3,"color":"black"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(5), items[0].(map[string]any)["quantity"])
}

func TestCartHandler_AddItem_RejectsZeroQuantity(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":0}`)

	// binding "required" treats 0 as missing, so this fails at bind time
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_AddItem_RejectsNegativeQuantity(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":-3}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_SetQuantity_CartMissing(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPut, "/cart/update",
		`{"userId":"U00001","productId":"P0001","quantity":4}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_CART_NOT_FOUND")
}

func TestCartHandler_SetQuantity_ItemMissing(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":1}`)

	w := doJSON(t, router, http.MethodPut, "/cart/update",
		`{"userId":"U00001","productId":"P9999","quantity":4}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_ITEM_NOT_FOUND")
}

func TestCartHandler_SetQuantity_Overwrites(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":2}`)

	w := doJSON(t, router, http.MethodPut, "/cart/update",
		`{"userId":"U00001","productId":"P0001","quantity":7}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0].(map[string]any)["quantity"])
}

func TestCartHandler_RemoveItem_DropsAllVariants(t *testing.T) {
	store := newFakeCartStore()
	router := newCartTestRouter(store)
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":1,"color":"black"}`)
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":1,"color":"white"}`)
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0002","quantity":1}`)

	w := doJSON(t, router, http.MethodDelete, "/cart/remove",
		`{"userId":"U00001","productId":"P0001"}`)

	require.Equal(t, http.StatusOK, w.Code)

	get := doJSON(t, router, http.MethodGet, "/cart/U00001", "")
	data := decodeData(t, get)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "P0002", items[0].(map[string]any)["productId"])
}

func TestCartHandler_RemoveItem_AbsentProductIsNoOp(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())
	doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"U00001","productId":"P0001","quantity":1}`)

	w := doJSON(t, router, http.MethodDelete, "/cart/remove",
		`{"userId":"U00001","productId":"P9999"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_RemoveItem_CartMissing(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodDelete, "/cart/remove",
		`{"userId":"U00001","productId":"P0001"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_CART_NOT_FOUND")
}

func TestCartHandler_AddItem_RejectsMalformedUserID(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPost, "/carts",
		`{"userId":"not-an-id","productId":"P0001","quantity":1}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sequential identifier")
}

func TestCartHandler_AddItem_InvalidBody(t *testing.T) {
	router := newCartTestRouter(newFakeCartStore())

	w := doJSON(t, router, http.MethodPost, "/carts", `{"userId":"U00001"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
