package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
)

func TestStoreController_PushAndRemove(t *testing.T) {
	app := newTestApp(t, stubCards{})
	session := sessionFor(t, app.user)
	p := app.seedProduct(t, "Pikachu", "Jungle")

	w := performRequest(app.router, "POST", "/api/store/push", dto.ProductIDReq{ProductID: p.ID}, session)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "gid-1", body["shopifyProductId"])

	w = performRequest(app.router, "POST", "/api/store/push", dto.ProductIDReq{ProductID: p.ID}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product already added to your store", decodeBody(t, w)["error"])

	w = performRequest(app.router, "GET", "/api/products/added", nil, session)
	assert.Equal(t, []interface{}{p.ID}, decodeBody(t, w)["addedProductIds"])

	w = performRequest(app.router, "POST", "/api/store/remove", dto.ProductIDReq{ProductID: p.ID}, session)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(app.router, "POST", "/api/store/remove", dto.ProductIDReq{ProductID: p.ID}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found in your store", decodeBody(t, w)["error"])
}

func TestStoreController_RequestValidation(t *testing.T) {
	app := newTestApp(t, stubCards{})
	session := sessionFor(t, app.user)

	tests := []struct {
		name       string
		path       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"推送缺少商品ID", "/api/store/push", map[string]string{}, http.StatusBadRequest, "Missing required field: productId"},
		{"推送不存在的商品", "/api/store/push", dto.ProductIDReq{ProductID: "missing"}, http.StatusNotFound, "Product not found"},
		{"批量上架缺少系列", "/api/store/add-all-from-set", map[string]string{}, http.StatusBadRequest, "Set name is required"},
		{"批量上架空白系列", "/api/store/add-all-from-set", dto.SetReq{Set: "   "}, http.StatusBadRequest, "Set name is required"},
		{"批量下架缺少系列", "/api/store/remove-all-from-set", nil, http.StatusBadRequest, "Set name is required"},
		{"系列没有商品", "/api/store/add-all-from-set", dto.SetReq{Set: "Unknown"}, http.StatusNotFound, "No products found for this set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(app.router, "POST", tt.path, tt.body, session)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, w)["error"])
		})
	}
}

func TestStoreController_BulkBySet(t *testing.T) {
	app := newTestApp(t, stubCards{})
	session := sessionFor(t, app.user)
	app.seedProduct(t, "Pikachu", "Jungle")
	app.seedProduct(t, "Eevee", "Jungle")

	w := performRequest(app.router, "POST", "/api/store/remove-all-from-set", dto.SetReq{Set: "Jungle"}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No products from this set are currently added to your store", decodeBody(t, w)["error"])

	w = performRequest(app.router, "POST", "/api/store/add-all-from-set", dto.SetReq{Set: "Jungle"}, session)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	results := body["results"].(map[string]interface{})
	assert.Len(t, results["successful"], 2)

	w = performRequest(app.router, "POST", "/api/store/remove-all-from-set", dto.SetReq{Set: "Jungle"}, session)
	require.Equal(t, http.StatusOK, w.Code)
	results = decodeBody(t, w)["results"].(map[string]interface{})
	assert.Len(t, results["successful"], 2)

	var active int64
	require.NoError(t, app.db.Model(&model.AddedProduct{}).Where("sync_status = ?", model.SyncStatusActive).Count(&active).Error)
	assert.Zero(t, active)
}

func TestStoreController_PushToUser(t *testing.T) {
	app := newTestApp(t, stubCards{})
	p := app.seedProduct(t, "Pikachu", "Jungle")

	w := performRequest(app.router, "POST", "/api/admin/push-to-user",
		dto.AdminPushReq{ProductID: p.ID, UserID: app.user.ID}, sessionFor(t, app.user))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(app.router, "POST", "/api/admin/push-to-user",
		dto.AdminPushReq{ProductID: p.ID, UserID: "missing"}, sessionFor(t, app.admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])

	w = performRequest(app.router, "POST", "/api/admin/push-to-user",
		dto.AdminPushReq{ProductID: p.ID, UserID: app.user.ID}, sessionFor(t, app.admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product successfully added to merchant.myshopify.com", decodeBody(t, w)["message"])
}
