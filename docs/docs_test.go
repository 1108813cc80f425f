package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistersRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := []struct{ path, method string }{
		{"/api/auth/install", "get"},
		{"/api/auth/callback", "get"},
		{"/api/products", "post"},
		{"/api/products/{id}", "delete"},
		{"/api/store/add-all-from-set", "post"},
		{"/api/cards/import", "post"},
		{"/api/admin/sync-prices", "post"},
		{"/api/cron/sync-prices", "get"},
	}
	for _, r := range routes {
		assert.Contains(t, doc.Paths[r.path], r.method, r.path)
	}
	assert.Contains(t, doc.Definitions, "dto.SyncPricesResp")
	assert.Contains(t, doc.Definitions, "model.Product")
}
