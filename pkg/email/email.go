package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// ReceiptLine is one sold item rendered on the emailed receipt.
type ReceiptLine struct {
	Name     string
	Quantity int
	Amount   string
}

// Receipt carries display-ready values for one committed sale. Amounts are
// pre-formatted strings so the template stays dumb about currency.
type Receipt struct {
	StoreName   string
	StoreTaxID  string
	InvoiceNo   string
	CashierName string
	IssuedAt    string
	Currency    string
	Lines       []ReceiptLine
	SubTotal    string
	Discount    string
	Vat         string
	RoundOff    string
	GrandTotal  string
	Paid        string
	Due         string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured reports whether SMTP has been set up.
func (s *EmailService) IsConfigured() bool {
	return s.config.SMTPHost != ""
}

// SendReceiptEmail emails a sale receipt to the customer
func (s *EmailService) SendReceiptEmail(toEmail string, receipt *Receipt) error {
	htmlContent, err := s.renderReceiptEmail(receipt)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Receipt %s - %s", receipt.InvoiceNo, receipt.StoreName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%s", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderReceiptEmail renders the receipt email template
func (s *EmailService) renderReceiptEmail(receipt *Receipt) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, receipt); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// receiptTemplate is the HTML template for sale receipts
const receiptTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Receipt {{.InvoiceNo}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 480px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background-color: #1a1a2e; padding: 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 24px; font-weight: 600;">{{.StoreName}}</h1>
                            {{if .StoreTaxID}}<p style="color: #a0aec0; font-size: 13px; margin: 8px 0 0 0;">PIN: {{.StoreTaxID}}</p>{{end}}
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <p style="color: #4a5568; font-size: 14px; margin: 0 0 4px 0;">Receipt <strong>{{.InvoiceNo}}</strong></p>
                            <p style="color: #718096; font-size: 13px; margin: 0 0 4px 0;">{{.IssuedAt}}</p>
                            <p style="color: #718096; font-size: 13px; margin: 0 0 20px 0;">Served by {{.CashierName}}</p>

                            <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
                                {{range .Lines}}
                                <tr>
                                    <td style="color: #1a1a2e; font-size: 14px; padding: 6px 0; border-bottom: 1px solid #edf2f7;">{{.Name}} x{{.Quantity}}</td>
                                    <td style="color: #1a1a2e; font-size: 14px; padding: 6px 0; text-align: right; border-bottom: 1px solid #edf2f7;">{{$.Currency}} {{.Amount}}</td>
                                </tr>
                                {{end}}
                            </table>

                            <table style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">Subtotal</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">{{.Currency}} {{.SubTotal}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">Discount</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">-{{.Currency}} {{.Discount}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">VAT</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">{{.Currency}} {{.Vat}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">Round off</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">{{.Currency}} {{.RoundOff}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; padding: 10px 0 3px 0;">Total</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; padding: 10px 0 3px 0; text-align: right;">{{.Currency}} {{.GrandTotal}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">Paid</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">{{.Currency}} {{.Paid}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0;">Balance due</td>
                                    <td style="color: #718096; font-size: 13px; padding: 3px 0; text-align: right;">{{.Currency}} {{.Due}}</td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">Thank you for shopping with {{.StoreName}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
