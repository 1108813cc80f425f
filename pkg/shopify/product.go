package shopify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// 商品固定属性
const (
	Vendor      = "Elite Cards"
	ProductType = "Trading Cards"
	TagPrefix   = "elite-cards"

	defaultInventory = 100
)

// ProductInput 推送到商户店铺的商品数据
type ProductInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Set         string
	Variants    []VariantInput // 单卡品相，为空时只建一个默认变体
}

// VariantInput 品相变体
type VariantInput struct {
	Option1 string
	Price   decimal.Decimal
	SKU     string
}

// VariantPricer 按品相计算变体价格
type VariantPricer func(base decimal.Decimal, option1 string) decimal.Decimal

// ==================== REST 结构 ====================

type productEnvelope struct {
	Product productBody `json:"product"`
}

type productBody struct {
	ID          int64         `json:"id,omitempty"`
	Title       string        `json:"title,omitempty"`
	BodyHTML    string        `json:"body_html,omitempty"`
	Vendor      string        `json:"vendor,omitempty"`
	ProductType string        `json:"product_type,omitempty"`
	Tags        string        `json:"tags,omitempty"`
	Options     []optionBody  `json:"options,omitempty"`
	Variants    []variantBody `json:"variants,omitempty"`
	Images      []imageBody   `json:"images,omitempty"`
}

type optionBody struct {
	Name string `json:"name"`
}

type variantBody struct {
	ID                  int64  `json:"id,omitempty"`
	Option1             string `json:"option1,omitempty"`
	Price               string `json:"price"`
	SKU                 string `json:"sku,omitempty"`
	InventoryManagement string `json:"inventory_management,omitempty"`
	InventoryQuantity   int    `json:"inventory_quantity,omitempty"`
}

type imageBody struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func buildProductBody(in ProductInput) productBody {
	body := productBody{
		Title:       in.Title,
		BodyHTML:    in.Description,
		Vendor:      Vendor,
		ProductType: ProductType,
		Tags:        fmt.Sprintf("%s,%s", TagPrefix, in.Set),
	}

	if len(in.Variants) == 0 {
		body.Variants = []variantBody{{
			Price:               formatPrice(in.Price),
			InventoryManagement: "shopify",
			InventoryQuantity:   defaultInventory,
		}}
	} else {
		body.Options = []optionBody{{Name: "Condition"}}
		for _, v := range in.Variants {
			body.Variants = append(body.Variants, variantBody{
				Option1:             v.Option1,
				Price:               formatPrice(v.Price),
				SKU:                 v.SKU,
				InventoryManagement: "shopify",
				InventoryQuantity:   defaultInventory,
			})
		}
	}

	if in.ImageURL != "" {
		body.Images = []imageBody{{Src: in.ImageURL, Alt: in.Title}}
	}
	return body
}

// ==================== 商品操作 ====================

// CreateProduct 在商户店铺创建商品，返回远端商品 ID
func (c *Client) CreateProduct(ctx context.Context, accessToken, shopDomain string, in ProductInput) (string, error) {
	var out productEnvelope
	resp, err := c.request(ctx, accessToken).
		SetBody(productEnvelope{Product: buildProductBody(in)}).
		SetResult(&out).
		Post(c.adminURL(shopDomain, "products.json"))
	if err := checkResponse("create product", resp, err); err != nil {
		return "", err
	}
	if out.Product.ID == 0 {
		return "", fmt.Errorf("shopify create product: 响应缺少商品 ID")
	}
	return strconv.FormatInt(out.Product.ID, 10), nil
}

// DeleteProduct 删除远端商品，404 由调用方用 IsNotFound 判断
func (c *Client) DeleteProduct(ctx context.Context, accessToken, shopDomain, remoteID string) error {
	resp, err := c.request(ctx, accessToken).
		Delete(c.adminURL(shopDomain, fmt.Sprintf("products/%s.json", remoteID)))
	return checkResponse("delete product", resp, err)
}

// UpdatePrice 只更新远端商品各变体的价格
// pricer 为空时所有变体统一使用 newPrice
func (c *Client) UpdatePrice(ctx context.Context, accessToken, shopDomain, remoteID string, newPrice decimal.Decimal, pricer VariantPricer) error {
	id, err := strconv.ParseInt(remoteID, 10, 64)
	if err != nil {
		return fmt.Errorf("shopify update price: 无效的远端商品 ID %q: %w", remoteID, err)
	}
	productURL := c.adminURL(shopDomain, fmt.Sprintf("products/%s.json", remoteID))

	var current productEnvelope
	resp, err := c.request(ctx, accessToken).
		SetQueryParam("fields", "id,variants").
		SetResult(&current).
		Get(productURL)
	if err := checkResponse("get product", resp, err); err != nil {
		return err
	}

	update := productBody{ID: id}
	for _, v := range current.Product.Variants {
		price := newPrice
		if pricer != nil {
			price = pricer(newPrice, v.Option1)
		}
		update.Variants = append(update.Variants, variantBody{ID: v.ID, Price: formatPrice(price)})
	}
	if len(update.Variants) == 0 {
		return fmt.Errorf("shopify update price: 商品 %s 没有变体", remoteID)
	}

	resp, err = c.request(ctx, accessToken).
		SetBody(productEnvelope{Product: update}).
		Put(productURL)
	return checkResponse("update price", resp, err)
}
