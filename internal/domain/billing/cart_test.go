package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(price int64, vat, qty, available int) Line {
	return Line{
		ProductID:   uuid.New(),
		ProductName: "Fresh Milk 500ml",
		BatchCode:   "B-2026-01",
		UnitPrice:   price,
		CostPrice:   price / 2,
		VatPercent:  vat,
		Quantity:    qty,
		Available:   available,
	}
}

func TestCartAddLine(t *testing.T) {
	cart, err := NewCart().AddLine(testLine(10000, 5, 2, 10))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(20000), cart.SubTotal())
	assert.Equal(t, int64(1000), cart.VatTotal())
}

func TestCartAddLineMergesDuplicateProduct(t *testing.T) {
	line := testLine(10000, 0, 2, 5)
	cart, err := NewCart().AddLine(line)
	require.NoError(t, err)

	line.Quantity = 3
	cart, err = cart.AddLine(line)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCartAddLineRejectsOverAvailable(t *testing.T) {
	line := testLine(10000, 0, 3, 5)
	cart, err := NewCart().AddLine(line)
	require.NoError(t, err)

	line.Quantity = 3
	after, err := cart.AddLine(line)
	require.Error(t, err)
	// rejected add leaves the cart unchanged
	assert.Equal(t, cart, after)
	assert.Equal(t, 3, after.Lines[0].Quantity)
}

func TestCartAddLineRejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewCart().AddLine(testLine(10000, 0, 0, 5))
	assert.Error(t, err)

	_, err = NewCart().AddLine(testLine(10000, 0, -1, 5))
	assert.Error(t, err)
}

func TestCartUpdateQuantity(t *testing.T) {
	line := testLine(10000, 0, 1, 4)
	cart, err := NewCart().AddLine(line)
	require.NoError(t, err)

	cart, err = cart.UpdateQuantity(line.ProductID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	_, err = cart.UpdateQuantity(line.ProductID, 5)
	assert.Error(t, err)

	_, err = cart.UpdateQuantity(uuid.New(), 1)
	assert.Error(t, err)
}

func TestCartUpdateQuantityToZeroRemovesLine(t *testing.T) {
	line := testLine(10000, 0, 2, 5)
	cart, err := NewCart().AddLine(line)
	require.NoError(t, err)

	cart, err = cart.UpdateQuantity(line.ProductID, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveLine(t *testing.T) {
	first := testLine(10000, 0, 1, 5)
	second := testLine(5000, 0, 1, 5)

	cart, err := NewCart().AddLine(first)
	require.NoError(t, err)
	cart, err = cart.AddLine(second)
	require.NoError(t, err)

	cart, err = cart.RemoveLine(first.ProductID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, second.ProductID, cart.Lines[0].ProductID)

	_, err = cart.RemoveLine(first.ProductID)
	assert.Error(t, err)
}

func TestCartOperationsDoNotMutateReceiver(t *testing.T) {
	line := testLine(10000, 0, 2, 10)
	original, err := NewCart().AddLine(line)
	require.NoError(t, err)

	_, err = original.UpdateQuantity(line.ProductID, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, original.Lines[0].Quantity)
}

func TestLineVatTruncatesToCent(t *testing.T) {
	// 33.33 at 5% is 1.6665, charged as 1.66
	line := Line{ProductID: uuid.New(), UnitPrice: 3333, VatPercent: 5, Quantity: 1, Available: 1}
	assert.Equal(t, int64(166), line.VatAmount())
}
