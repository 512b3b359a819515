package printer

// ReceiptLine is one sold item on the printed receipt.
type ReceiptLine struct {
	Name     string
	Quantity int
	Amount   string
}

// Receipt carries display-ready values for one committed sale. Amounts are
// pre-formatted strings so this package stays ignorant of currency handling.
type Receipt struct {
	StoreName   string
	StoreTaxID  string
	InvoiceNo   string
	CashierName string
	IssuedAt    string
	Lines       []ReceiptLine
	SubTotal    string
	Discount    string
	Vat         string
	RoundOff    string
	GrandTotal  string
	Paid        string
	Due         string
}

// RenderReceipt builds the ESC/POS byte stream for a sale receipt.
func RenderReceipt(r *Receipt, charWidth int) []byte {
	doc := NewDocument(charWidth)

	doc.SetAlign(AlignCenter).
		SetFontSize(FontDouble).
		SetBold(true).
		Text(r.StoreName).
		SetBold(false).
		SetFontSize(FontNormal)

	if r.StoreTaxID != "" {
		doc.Text("PIN: " + r.StoreTaxID)
	}

	doc.SetAlign(AlignLeft).
		Separator('-').
		KeyValue("Receipt", r.InvoiceNo).
		KeyValue("Date", r.IssuedAt).
		KeyValue("Cashier", r.CashierName).
		Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.Name, line.Amount)
	}

	doc.Separator('-').
		KeyValue("Subtotal", r.SubTotal).
		KeyValue("Discount", "-"+r.Discount).
		KeyValue("VAT", r.Vat).
		KeyValue("Round off", r.RoundOff)

	doc.SetBold(true).
		KeyValue("TOTAL", r.GrandTotal).
		SetBold(false).
		KeyValue("Paid", r.Paid).
		KeyValue("Balance", r.Due).
		Separator('-')

	doc.SetAlign(AlignCenter).
		Text("Thank you, karibu tena!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
