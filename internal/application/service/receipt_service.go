package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/email"
	"github.com/dukapoint/dukapoint-api/pkg/printer"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// ReceiptService delivers receipts for committed invoices, to the till
// printer or by email.
type ReceiptService struct {
	invoiceRepo  repository.InvoiceRepository
	storeRepo    repository.StoreRepository
	device       printer.Printer
	emailService *email.EmailService
	charWidth    int
	currency     string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	invoiceRepo repository.InvoiceRepository,
	storeRepo repository.StoreRepository,
	device printer.Printer,
	emailService *email.EmailService,
	charWidth int,
	currency string,
) *ReceiptService {
	return &ReceiptService{
		invoiceRepo:  invoiceRepo,
		storeRepo:    storeRepo,
		device:       device,
		emailService: emailService,
		charWidth:    charWidth,
		currency:     currency,
	}
}

// PrintReceipt renders the invoice as ESC/POS and sends it to the printer.
func (s *ReceiptService) PrintReceipt(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, store, err := s.load(ctx, invoiceID)
	if err != nil {
		return err
	}

	lines := make([]printer.ReceiptLine, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lines = append(lines, printer.ReceiptLine{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Amount:   utils.FormatAmount(item.Total),
		})
	}

	taxID := ""
	if store.TaxID != nil {
		taxID = *store.TaxID
	}

	data := printer.RenderReceipt(&printer.Receipt{
		StoreName:   store.Name,
		StoreTaxID:  taxID,
		InvoiceNo:   invoice.InvoiceNo,
		CashierName: invoice.CashierName,
		IssuedAt:    invoice.CreatedAt.Format("2006-01-02 15:04"),
		Lines:       lines,
		SubTotal:    utils.FormatAmount(invoice.SubTotal),
		Discount:    utils.FormatAmount(invoice.CalculatedDiscount),
		Vat:         utils.FormatAmount(invoice.VatTotal),
		RoundOff:    utils.FormatAmount(invoice.RoundOff),
		GrandTotal:  utils.FormatAmount(invoice.GrandTotal),
		Paid:        utils.FormatAmount(invoice.PaidAmount),
		Due:         utils.FormatAmount(invoice.DueAmount),
	}, s.charWidth)

	if err := s.device.Print(data); err != nil {
		return apperror.NewAppError(503, "Receipt printer is not available")
	}
	return nil
}

// EmailReceipt sends the invoice receipt to the given address.
func (s *ReceiptService) EmailReceipt(ctx context.Context, invoiceID uuid.UUID, toEmail string) error {
	if !s.emailService.IsConfigured() {
		return apperror.NewAppError(503, "Email delivery is not configured")
	}

	invoice, store, err := s.load(ctx, invoiceID)
	if err != nil {
		return err
	}

	lines := make([]email.ReceiptLine, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lines = append(lines, email.ReceiptLine{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Amount:   utils.FormatAmount(item.Total),
		})
	}

	taxID := ""
	if store.TaxID != nil {
		taxID = *store.TaxID
	}

	return s.emailService.SendReceiptEmail(toEmail, &email.Receipt{
		StoreName:   store.Name,
		StoreTaxID:  taxID,
		InvoiceNo:   invoice.InvoiceNo,
		CashierName: invoice.CashierName,
		IssuedAt:    invoice.CreatedAt.Format("2006-01-02 15:04"),
		Currency:    s.currency,
		Lines:       lines,
		SubTotal:    utils.FormatAmount(invoice.SubTotal),
		Discount:    utils.FormatAmount(invoice.CalculatedDiscount),
		Vat:         utils.FormatAmount(invoice.VatTotal),
		RoundOff:    utils.FormatAmount(invoice.RoundOff),
		GrandTotal:  utils.FormatAmount(invoice.GrandTotal),
		Paid:        utils.FormatAmount(invoice.PaidAmount),
		Due:         utils.FormatAmount(invoice.DueAmount),
	})
}

// PrinterStatus reports whether the configured printer is reachable.
func (s *ReceiptService) PrinterStatus() bool {
	return s.device.IsConnected()
}

func (s *ReceiptService) load(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, *entity.Store, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, apperror.NewNotFoundError("Invoice")
	}

	store, err := s.storeRepo.GetByID(ctx, invoice.StoreID)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, apperror.NewNotFoundError("Store")
	}

	return invoice, store, nil
}
