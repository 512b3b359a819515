package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
)

func draftWith(t *testing.T, lines ...Line) Draft {
	t.Helper()
	cart := NewCart()
	var err error
	for _, l := range lines {
		cart, err = cart.AddLine(l)
		require.NoError(t, err)
	}
	return NewDraft(cart)
}

func TestDraftTypicalSale(t *testing.T) {
	// two units at 100.00 with 5% VAT and a 10.00 discount comes to 200.00
	d := draftWith(t, testLine(10000, 5, 2, 10))
	require.NoError(t, d.SetDiscount(1000, enum.DiscountTypeFixed))

	assert.Equal(t, int64(20000), d.SubTotal)
	assert.Equal(t, int64(1000), d.VatTotal)
	assert.Equal(t, int64(1000), d.CalculatedDiscount)
	assert.Equal(t, int64(0), d.RoundOff)
	assert.Equal(t, int64(20000), d.GrandTotal)
}

func TestDraftRoundOffWholeAmount(t *testing.T) {
	// 33.00 is already whole, nothing to round
	d := draftWith(t, testLine(3300, 0, 1, 5))
	assert.Equal(t, int64(0), d.RoundOff)
	assert.Equal(t, int64(3300), d.GrandTotal)
}

func TestDraftRoundOffFractionalAmount(t *testing.T) {
	// 33.50 rounds up to 34.00 with 0.50 carried as round off
	d := draftWith(t, testLine(3350, 0, 1, 5))
	assert.Equal(t, int64(50), d.RoundOff)
	assert.Equal(t, int64(3400), d.GrandTotal)
}

func TestDraftPercentageDiscount(t *testing.T) {
	d := draftWith(t, testLine(10000, 0, 2, 10))
	require.NoError(t, d.SetDiscount(25, enum.DiscountTypePercentage))

	assert.Equal(t, int64(5000), d.CalculatedDiscount)
	assert.Equal(t, int64(15000), d.GrandTotal)
}

func TestDraftRejectsPercentageOverHundred(t *testing.T) {
	d := draftWith(t, testLine(10000, 0, 1, 5))
	require.NoError(t, d.SetDiscount(20, enum.DiscountTypePercentage))

	err := d.SetDiscount(150, enum.DiscountTypePercentage)
	require.Error(t, err)

	// the previous discount stays in effect
	assert.Equal(t, int64(20), d.Discount)
	assert.Equal(t, int64(2000), d.CalculatedDiscount)
	assert.Equal(t, int64(8000), d.GrandTotal)
}

func TestDraftRejectsNegativeDiscount(t *testing.T) {
	d := draftWith(t, testLine(10000, 0, 1, 5))
	require.NoError(t, d.SetDiscount(500, enum.DiscountTypeFixed))

	err := d.SetDiscount(-1, enum.DiscountTypeFixed)
	require.Error(t, err)
	assert.Equal(t, int64(500), d.Discount)
}

func TestDraftRejectsUnknownDiscountType(t *testing.T) {
	d := draftWith(t, testLine(10000, 0, 1, 5))
	err := d.SetDiscount(100, enum.DiscountType("bogus"))
	assert.Error(t, err)
}

func TestDraftClampsFixedDiscountToSubTotal(t *testing.T) {
	d := draftWith(t, testLine(10000, 5, 1, 5))
	require.NoError(t, d.SetDiscount(99999, enum.DiscountTypeFixed))

	// clamped, so only the VAT remains payable
	assert.Equal(t, int64(10000), d.CalculatedDiscount)
	assert.Equal(t, int64(500), d.GrandTotal)
}

func TestDraftGrandTotalIdentity(t *testing.T) {
	cases := []struct {
		price int64
		vat   int
		qty   int
		disc  int64
	}{
		{3333, 5, 1, 0},
		{10000, 16, 3, 2500},
		{199, 0, 7, 100},
		{4950, 8, 2, 0},
	}
	for _, tc := range cases {
		d := draftWith(t, testLine(tc.price, tc.vat, tc.qty, 100))
		require.NoError(t, d.SetDiscount(tc.disc, enum.DiscountTypeFixed))

		assert.Equal(t, d.SubTotal-d.CalculatedDiscount+d.VatTotal+d.RoundOff, d.GrandTotal)
		assert.Zero(t, d.GrandTotal%100, "grand total must be a whole currency unit")
		assert.GreaterOrEqual(t, d.RoundOff, int64(0))
		assert.Less(t, d.RoundOff, int64(100))
	}
}

func TestDraftRecalculateIsIdempotent(t *testing.T) {
	d := draftWith(t, testLine(3350, 5, 2, 10))
	require.NoError(t, d.SetDiscount(10, enum.DiscountTypePercentage))

	before := d
	d.Recalculate()
	assert.Equal(t, before, d)
}

func TestDraftEmptyCart(t *testing.T) {
	d := NewDraft(NewCart())
	assert.Equal(t, int64(0), d.SubTotal)
	assert.Equal(t, int64(0), d.GrandTotal)
	assert.Equal(t, int64(0), d.RoundOff)
}

func TestDraftSetCartReprices(t *testing.T) {
	d := draftWith(t, testLine(10000, 0, 1, 5))
	require.NoError(t, d.SetDiscount(50, enum.DiscountTypePercentage))

	cart, err := NewCart().AddLine(testLine(20000, 0, 1, 5))
	require.NoError(t, err)
	d.SetCart(cart)

	assert.Equal(t, int64(20000), d.SubTotal)
	assert.Equal(t, int64(10000), d.CalculatedDiscount)
	assert.Equal(t, int64(10000), d.GrandTotal)
}
