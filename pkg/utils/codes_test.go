package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceNoFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		no := GenerateInvoiceNo()
		require.True(t, pattern.MatchString(no), "unexpected invoice number %q", no)
	}
}

func TestGenerateInvoiceNoVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateInvoiceNo()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "fresh-milk-500ml", Slugify("Fresh Milk 500ml"))
	assert.Equal(t, "sukari-nguru", Slugify("  Sukari   Nguru!  "))
	assert.Equal(t, "a-b", Slugify("A---B"))
}
