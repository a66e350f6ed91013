package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
)

func TestFromCart_StoresNumericSeq(t *testing.T) {
	item, err := cart.NewItem("P0001", 2, "black")
	require.NoError(t, err)
	c := cart.New("CT00047", "U00001", item)

	doc, err := FromCart(c)

	require.NoError(t, err)
	assert.Equal(t, "CT00047", doc.ID)
	assert.Equal(t, uint64(47), doc.Seq)
	assert.Equal(t, "U00001", doc.UserID)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "black", doc.Items[0].Color)
}

func TestFromCart_MalformedID(t *testing.T) {
	item, err := cart.NewItem("P0001", 1, "")
	require.NoError(t, err)
	c := cart.New("CT00NaN", "U00001", item)

	_, err = FromCart(c)

	assert.ErrorIs(t, err, shared.ErrDataIntegrity)
}

func TestCartDocument_ToCart(t *testing.T) {
	now := time.Now()
	doc := &CartDocument{
		ID:     "CT00001",
		Seq:    1,
		UserID: "U00001",
		Items: []CartItemDocument{
			{ProductID: "P0001", Quantity: 3, Color: "red"},
		},
		UpdatedAt: now,
	}

	c := doc.ToCart()

	assert.Equal(t, "CT00001", c.ID)
	assert.Equal(t, "U00001", c.UserID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, cart.Item{ProductID: "P0001", Quantity: 3, Color: "red"}, c.Items[0])
	assert.Equal(t, now, c.UpdatedAt)
}

func TestProductDocument_PriceRoundTrip(t *testing.T) {
	product, err := catalog.NewProduct("P0001", "Runner Sneaker", decimal.RequireFromString("59.90"))
	require.NoError(t, err)

	doc := FromProduct(product)
	assert.Equal(t, "59.9", doc.Price)

	restored, err := doc.ToProduct()
	require.NoError(t, err)
	assert.True(t, restored.Price.Equal(product.Price))
}

func TestProductDocument_MalformedPrice(t *testing.T) {
	doc := &ProductDocument{ID: "P0001", Name: "Runner Sneaker", Price: "not-a-number"}

	_, err := doc.ToProduct()

	assert.ErrorIs(t, err, shared.ErrDataIntegrity)
}
