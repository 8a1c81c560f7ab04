package domain_test

import (
	"testing"

	"github.com/mjaros/beertracker/internal/apperrors"
	"github.com/mjaros/beertracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyCode(t *testing.T) {
	eur, err := domain.ParseCurrencyCode("EUR")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyEUR, eur)

	usd, err := domain.ParseCurrencyCode("USD")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyUSD, usd)

	assert.Len(t, domain.SupportedCurrencies, 2)
}

func TestParseCurrencyCode_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"GBP", "eur", "", "EURO"} {
		_, err := domain.ParseCurrencyCode(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestCurrencyCode_Other(t *testing.T) {
	assert.Equal(t, domain.CurrencyUSD, domain.CurrencyEUR.Other())
	assert.Equal(t, domain.CurrencyEUR, domain.CurrencyUSD.Other())
}
