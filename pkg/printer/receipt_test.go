package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	data := RenderReceipt(&Receipt{
		StoreName:   "Dukapoint Main",
		StoreTaxID:  "P051234567X",
		InvoiceNo:   "INV-7KQ2M9ZA",
		CashierName: "Grace Wanjiru",
		IssuedAt:    "2026-08-31 14:02",
		Lines: []ReceiptLine{
			{Name: "Unga Pembe 2kg", Quantity: 2, Amount: "200.00"},
			{Name: "Chai Bora 250g", Quantity: 1, Amount: "50.00"},
		},
		SubTotal:   "250.00",
		Discount:   "10.00",
		Vat:        "12.50",
		RoundOff:   "0.50",
		GrandTotal: "253.00",
		Paid:       "253.00",
		Due:        "0.00",
	}, 32)

	require.NotEmpty(t, data)

	// starts with printer init and ends with a cut
	assert.Equal(t, []byte{ESC, '@'}, data[:2])
	assert.Equal(t, []byte{GS, 'V', 0x00}, data[len(data)-3:])

	text := string(data)
	assert.Contains(t, text, "Dukapoint Main")
	assert.Contains(t, text, "INV-7KQ2M9ZA")
	assert.Contains(t, text, "2x Unga Pembe 2kg")
	assert.Contains(t, text, "253.00")
}

func TestDocumentKeyValuePadsToWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total", "99.00")

	text := string(doc.Bytes())
	assert.Contains(t, text, "Total          99.00")
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("null", "", "")
	require.NoError(t, err)
	assert.NoError(t, p.Print([]byte("x")))
	assert.False(t, p.IsConnected())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("bogus", "", "")
	assert.Error(t, err)
}
