package utils

import (
	"crypto/rand"
	"regexp"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomCode returns n random characters from A-Z0-9.
func randomCode(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = codeCharset[int(buf[i])%len(codeCharset)]
	}
	return string(buf)
}

// GenerateInvoiceNo generates an invoice number of the form INV-XXXXXXXX.
// No uniqueness check is performed here; the database unique constraint is
// the final arbiter and the committer retries on collision.
func GenerateInvoiceNo() string {
	return "INV-" + randomCode(8)
}

// GenerateProductCode generates a product code of the form PROD-XXXXXXXX.
func GenerateProductCode() string {
	return "PROD-" + randomCode(8)
}

var (
	slugInvalid = regexp.MustCompile("[^a-z0-9-]")
	slugDashes  = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
