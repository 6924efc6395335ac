package campaign

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidate(t *testing.T) {
	valid := []string{
		"https://acme-leather.com",
		"http://www.acme.co.uk/shop",
		"  https://acme.com  ",
	}
	for _, raw := range valid {
		t.Run(raw, func(t *testing.T) {
			assert.NoError(t, Input{StoreURL: raw, Description: "wallets", Country: "US"}.Validate())
		})
	}

	invalid := []string{
		"not a url",
		"acme.com",
		"ftp://acme.com",
		"https://",
		"http://[::1",
	}
	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			err := Input{StoreURL: raw, Description: "wallets", Country: "US"}.Validate()
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Empty(t, inputErr.Fields)
			assert.Contains(t, err.Error(), "storeUrl is not a valid URL")
		})
	}

	t.Run("missing fields in input order", func(t *testing.T) {
		err := Input{Description: "wallets"}.Validate()
		assert.EqualError(t, err, "Missing required fields: storeUrl, country.")
	})
}

func TestBrandFromURL(t *testing.T) {
	assert.Equal(t, "acme-leather", BrandFromURL("https://www.acme-leather.com"))
	assert.Equal(t, "acme", BrandFromURL("http://ACME.co.uk/shop"))
	assert.Equal(t, PlaceholderBrand, BrandFromURL("not a url"))
}
