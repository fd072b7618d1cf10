package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novashop/novashop-backend/internal/app/service"
)

func viewOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	view, ok := body["view"].(map[string]interface{})
	require.True(t, ok)
	return view
}

func TestStorefrontController_DefaultView(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, _ := doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := viewOf(t, decodeBody(t, w))
	assert.Equal(t, "Alle", view["active_category"])
	assert.Equal(t, false, view["cart_open"])
	assert.Nil(t, view["selected_product"])
	assert.Equal(t, false, view["insight_pending"])
}

func TestStorefrontController_SetCategory(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, cookie := doRequest(t, engine, http.MethodPut, "/api/v1/view/category", gin.H{"category": "Gadgets"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gadgets", decodeBody(t, w)["active_category"])

	w, _ = doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
	assert.Equal(t, "Gadgets", viewOf(t, decodeBody(t, w))["active_category"])
}

func TestStorefrontController_SetCategory_OutsideClosedSet(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, _ := doRequest(t, engine, http.MethodPut, "/api/v1/view/category", gin.H{"category": "Speelgoed"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CATALOG_INVALID_CATEGORY", decodeBody(t, w)["error"])
}

func TestStorefrontController_CartDrawer(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/cart/open", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, cookie = doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
	assert.Equal(t, true, viewOf(t, decodeBody(t, w))["cart_open"])

	w, cookie = doRequest(t, engine, http.MethodPost, "/api/v1/view/cart/close", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
	assert.Equal(t, false, viewOf(t, decodeBody(t, w))["cart_open"])
}

func TestStorefrontController_OpenProduct(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/4/open", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["insight_pending"])
	product := body["product"].(map[string]interface{})
	assert.Equal(t, "Mechanisch Toetsenbord", product["name"])

	// Without an API key the insight resolves to the canned fallback.
	require.Eventually(t, func() bool {
		w, _ := doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
		view := viewOf(t, decodeBody(t, w))
		return view["insight_pending"] == false && view["insight"] == service.FallbackNoAPIKey
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStorefrontController_OpenProduct_ReplacesOpenOverlay(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	_, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/1/open", nil, nil)
	w, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/2/open", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
	view := viewOf(t, decodeBody(t, w))
	selected := view["selected_product"].(map[string]interface{})
	assert.Equal(t, float64(2), selected["id"])
}

func TestStorefrontController_OpenProduct_Unknown(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/999/open", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorefrontController_CloseProduct(t *testing.T) {
	engine, _ := setupStorefrontServer(t)

	_, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/1/open", nil, nil)

	w, cookie := doRequest(t, engine, http.MethodPost, "/api/v1/view/products/close", nil, cookie)
	require.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, cookie)
	view := viewOf(t, decodeBody(t, w))
	assert.Nil(t, view["selected_product"])
	assert.Equal(t, false, view["insight_pending"])
}

func TestStorefrontController_SessionCookieIssued(t *testing.T) {
	engine, store := setupStorefrontServer(t)

	_, cookie := doRequest(t, engine, http.MethodGet, "/api/v1/view", nil, nil)

	require.NotNil(t, cookie)
	_, ok := store.Lookup(cookie.Value)
	assert.True(t, ok)
}
