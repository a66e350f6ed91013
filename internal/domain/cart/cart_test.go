package cart

import (
	"testing"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Validation(t *testing.T) {
	item, err := NewItem("P001", 2, "red")
	require.NoError(t, err)
	assert.Equal(t, "P001", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "red", item.Color)

	_, err = NewItem("", 1, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewItem("P001", 0, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewItem("P001", -3, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestCart_Add_MergesMatchingLine(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2, Color: "red"})

	c.Add(Item{ProductID: "P001", Quantity: 3, Color: "red"})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestCart_Add_ColorVariantIsSeparateLine(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2, Color: "red"})

	c.Add(Item{ProductID: "P001", Quantity: 1, Color: "blue"})

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestCart_Add_AppendsWithoutTouchingOtherLines(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2})

	c.Add(Item{ProductID: "P002", Quantity: 4})

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "P002", c.Items[1].ProductID)
	assert.Equal(t, 4, c.Items[1].Quantity)
}

func TestCart_SetQuantity_Overwrites(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2})

	err := c.SetQuantity("P001", 7)

	require.NoError(t, err)
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestCart_SetQuantity_MissingItem(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2})

	err := c.SetQuantity("P999", 7)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, 2, c.Items[0].Quantity, "items must be unchanged after a failed update")
}

func TestCart_Remove_DropsAllVariants(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2, Color: "red"})
	c.Add(Item{ProductID: "P001", Quantity: 1, Color: "blue"})
	c.Add(Item{ProductID: "P002", Quantity: 5})

	c.Remove("P001")

	require.Len(t, c.Items, 1)
	assert.Equal(t, "P002", c.Items[0].ProductID)
}

func TestCart_Remove_MissingProductIsNoOp(t *testing.T) {
	c := New("CT00001", "U00001", Item{ProductID: "P001", Quantity: 2})

	c.Remove("P999")
	c.Remove("P999")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestNewEmpty(t *testing.T) {
	c := NewEmpty("U00042")

	assert.Empty(t, c.ID)
	assert.Equal(t, "U00042", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestCartIDSequence(t *testing.T) {
	next, err := IDs.Next("")
	require.NoError(t, err)
	assert.Equal(t, "CT00001", next)

	next, err = IDs.Next("CT00047")
	require.NoError(t, err)
	assert.Equal(t, "CT00048", next)

	next, err = IDs.Next("CT99999")
	require.NoError(t, err)
	assert.Equal(t, "CT100000", next)
}
