package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/model"
	"elite_cards/internal/repository"
	"elite_cards/pkg/cache"
	"elite_cards/pkg/pokemontcg"
)

func newTestCardService(t *testing.T) (*CardService, *fakeCards, *gorm.DB) {
	db := setupTestDB(t)
	cards := newFakeCards()
	products := NewProductService(repository.NewProductRepository(db), repository.NewAddedProductRepository(db))
	return NewCardService(cards, products, cache.NewMemoryStore()), cards, db
}

func TestBuildCardQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"空查询", "  ", ""},
		{"单词前缀匹配", "charizard", "name:charizard*"},
		{"多个词精确匹配", "charizard ex", `name:"charizard ex"`},
		{"查询语法透传", "set.id:base1 rarity:Rare", "set.id:base1 rarity:Rare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCardQuery(tt.in))
		})
	}
}

func TestCardService_SearchCards(t *testing.T) {
	svc, cards, _ := newTestCardService(t)
	cards.addCard("base1-4", "Charizard", "Base", "300")
	ctx := context.Background()

	resp, err := svc.SearchCards(ctx, &dto.SearchCardsReq{Q: "charizard"})
	require.NoError(t, err)
	assert.Equal(t, "name:charizard*", cards.lastQuery)
	assert.Len(t, resp.Cards, 1)
	assert.Equal(t, dto.CardPagination{Page: 1, PageSize: 50, Total: 1}, resp.Pagination)

	// setId 优先
	resp, err = svc.SearchCards(ctx, &dto.SearchCardsReq{Q: "charizard", SetID: "base1", Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "base1", cards.lastSetID)
	assert.NotNil(t, resp.Cards)
	assert.Equal(t, dto.CardPagination{Page: 2, PageSize: 10, Total: 0}, resp.Pagination)
}

func TestCardService_GetSetsIsCached(t *testing.T) {
	svc, cards, _ := newTestCardService(t)
	cards.sets = []pokemontcg.Set{{ID: "base1", Name: "Base", Series: "Base", Total: 102}}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sets, err := svc.GetSets(ctx)
		require.NoError(t, err)
		require.Len(t, sets, 1)
		assert.Equal(t, "Base", sets[0].Name)
	}
	assert.Equal(t, 1, cards.setsCalls)
}

func TestCardService_GetCard_NotFound(t *testing.T) {
	svc, _, _ := newTestCardService(t)

	_, err := svc.GetCard(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCardService_ImportCard(t *testing.T) {
	noVariants := false

	tests := []struct {
		name         string
		req          dto.ImportCardReq
		wantVariants int
	}{
		{"默认生成品相变体", dto.ImportCardReq{PokemonCardID: "base1-4"}, 3},
		{"不生成变体", dto.ImportCardReq{PokemonCardID: "base1-4", CreateVariants: &noVariants}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cards, db := newTestCardService(t)
			cards.addCard("base1-4", "Charizard", "Base", "312.456")

			p, err := svc.ImportCard(context.Background(), &tt.req, "admin-1")
			require.NoError(t, err)

			assert.Equal(t, "base1-4", p.PokemonCardID)
			assert.True(t, p.AutoPriceSync)
			assert.Equal(t, "Base", p.Set)
			assert.Equal(t, "312.46", p.Price.StringFixed(2))
			assert.Equal(t, "admin-1", p.CreatedBy)

			md, err := p.GetMarketData()
			require.NoError(t, err)
			require.NotNil(t, md)

			var n int64
			db.Model(&model.ProductVariant{}).Where("product_id = ?", p.ID).Count(&n)
			assert.EqualValues(t, tt.wantVariants, n)
		})
	}
}

func TestCardService_ImportCard_PricingLookupFails(t *testing.T) {
	svc, cards, _ := newTestCardService(t)
	cards.addCard("base1-4", "Charizard", "Base", "312.456")
	cards.cards["base1-4"].Pricing = pokemontcg.Pricing{MarketPrice: decimal.RequireFromString("280")}
	cards.priceErr["Charizard"] = pokemontcg.ErrRateLimited

	p, err := svc.ImportCard(context.Background(), &dto.ImportCardReq{PokemonCardID: "base1-4"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "280.00", p.Price.StringFixed(2))
}

func TestCardService_ImportCard_Errors(t *testing.T) {
	svc, _, _ := newTestCardService(t)

	_, err := svc.ImportCard(context.Background(), &dto.ImportCardReq{PokemonCardID: " "}, "")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = svc.ImportCard(context.Background(), &dto.ImportCardReq{PokemonCardID: "missing"}, "")
	assert.ErrorIs(t, err, ErrCardNotFound)
}
