package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ardena/ardena-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "3600", r.FormValue("amount"))
		assert.Equal(t, "usd", r.FormValue("currency"))
		fmt.Fprint(w, `{"id": "pi_123", "payment_method": "pm_456"}`)
	}))
	defer server.Close()

	charger := NewStripeChargerWithURL("sk_test", server.URL)
	paymentID, err := charger.Charge(*validCard(), 3600, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pm_456", paymentID)
}

func TestChargeProviderErrors(t *testing.T) {
	tests := []struct {
		providerType string
		wantStatus   int
		wantCode     string
	}{
		{"card_error", http.StatusBadRequest, utils.CodeCardError},
		{"rate_limit_error", http.StatusTooManyRequests, utils.CodeRateLimitError},
		{"invalid_request_error", http.StatusBadRequest, utils.CodeInvalidRequestError},
		{"authentication_error", http.StatusUnauthorized, utils.CodeAuthenticationError},
		{"something_unexpected", http.StatusInternalServerError, utils.CodePaymentError},
	}

	for _, tt := range tests {
		t.Run(tt.providerType, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				fmt.Fprintf(w, `{"error": {"type": %q, "message": "provider said no"}}`, tt.providerType)
			}))
			defer server.Close()

			charger := NewStripeChargerWithURL("sk_test", server.URL)
			_, err := charger.Charge(*validCard(), 1000, "usd")
			require.Error(t, err)

			var apiErr *utils.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, "provider said no", apiErr.Message)
		})
	}
}

func TestChargeConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	charger := NewStripeChargerWithURL("sk_test", server.URL)
	_, err := charger.Charge(*validCard(), 1000, "usd")
	require.Error(t, err)

	var apiErr *utils.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, utils.CodeAPIConnectionError, apiErr.Code)
}

func TestChargeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	charger := NewStripeChargerWithURL("sk_test", server.URL)
	_, err := charger.Charge(*validCard(), 1000, "usd")
	require.Error(t, err)

	var apiErr *utils.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, utils.CodePaymentError, apiErr.Code)
}

func TestCardValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CardInformation)
		wantOK bool
	}{
		{"valid", func(c *CardInformation) {}, true},
		{"letters in number", func(c *CardInformation) { c.CardNumber = "4242abcd42424242" }, false},
		{"too short", func(c *CardInformation) { c.CardNumber = "4242" }, false},
		{"bad month", func(c *CardInformation) { c.ExpiryMonth = "13" }, false},
		{"expired year", func(c *CardInformation) { c.ExpiryYear = "2020" }, false},
		{"bad cvc", func(c *CardInformation) { c.Cvc = "12" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(card)
			err := card.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
