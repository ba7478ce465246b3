package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ardena/ardena-api/utils"
	"github.com/go-resty/resty/v2"
)

// CardInformation carries the raw card fields from the checkout request.
type CardInformation struct {
	CardNumber  string `json:"card_number" binding:"required"`
	ExpiryMonth string `json:"expiry_month" binding:"required"`
	ExpiryYear  string `json:"expiry_year" binding:"required"`
	Cvc         string `json:"cvc" binding:"required"`
}

// Validate applies the field-level card rules before anything is charged.
func (c *CardInformation) Validate() error {
	digits := 0
	for _, r := range c.CardNumber {
		if r == ' ' {
			continue
		}
		if r < '0' || r > '9' {
			return utils.NewAPIError(http.StatusBadRequest, "invalid_card", "Card number is invalid")
		}
		digits++
	}
	if digits < 13 || digits > 19 {
		return utils.NewAPIError(http.StatusBadRequest, "invalid_card", "Card number is invalid")
	}
	month, err := strconv.Atoi(c.ExpiryMonth)
	if err != nil || month < 1 || month > 12 {
		return utils.NewAPIError(http.StatusBadRequest, "invalid_card", "Invalid expiry month.")
	}
	year, err := strconv.Atoi(c.ExpiryYear)
	if err != nil || year < time.Now().Year() {
		return utils.NewAPIError(http.StatusBadRequest, "invalid_card", "Invalid expiry year.")
	}
	if len(c.Cvc) < 3 || len(c.Cvc) > 4 {
		return utils.NewAPIError(http.StatusBadRequest, "invalid_card", "Invalid cvc number.")
	}
	return nil
}

// Charger is the payment provider boundary: a synchronous charge call
// returning a payment reference or a classified error.
type Charger interface {
	Charge(card CardInformation, amountMinorUnits int64, currency string) (string, error)
}

// StripeCharger charges cards through the provider's REST API.
type StripeCharger struct {
	client    *resty.Client
	secretKey string
	baseURL   string
}

func NewStripeCharger() *StripeCharger {
	baseURL := os.Getenv("STRIPE_API_URL")
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return NewStripeChargerWithURL(os.Getenv("STRIPE_SECRET_KEY"), baseURL)
}

func NewStripeChargerWithURL(secretKey, baseURL string) *StripeCharger {
	return &StripeCharger{
		client:    resty.New().SetTimeout(30 * time.Second),
		secretKey: secretKey,
		baseURL:   baseURL,
	}
}

type providerError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type paymentIntentResponse struct {
	ID            string         `json:"id"`
	PaymentMethod string         `json:"payment_method"`
	Error         *providerError `json:"error"`
}

func (s *StripeCharger) Charge(card CardInformation, amountMinorUnits int64, currency string) (string, error) {
	resp, err := s.client.R().
		SetHeader("Accept", "application/json").
		SetBasicAuth(s.secretKey, "").
		SetFormData(map[string]string{
			"amount":                               strconv.FormatInt(amountMinorUnits, 10),
			"currency":                             currency,
			"confirm":                              "true",
			"payment_method_data[type]":            "card",
			"payment_method_data[card][number]":    card.CardNumber,
			"payment_method_data[card][exp_month]": card.ExpiryMonth,
			"payment_method_data[card][exp_year]":  card.ExpiryYear,
			"payment_method_data[card][cvc]":       card.Cvc,
		}).
		Post(s.baseURL + "/v1/payment_intents")
	if err != nil {
		return "", utils.PaymentError("api_connection_error", err.Error())
	}

	var payment paymentIntentResponse
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return "", utils.PaymentError("", fmt.Sprintf("unexpected provider response: %s", resp.Status()))
	}
	if payment.Error != nil {
		return "", utils.PaymentError(payment.Error.Type, payment.Error.Message)
	}
	if resp.IsError() || payment.ID == "" {
		return "", utils.PaymentError("", fmt.Sprintf("charge failed with status %d", resp.StatusCode()))
	}
	if payment.PaymentMethod != "" {
		return payment.PaymentMethod, nil
	}
	return payment.ID, nil
}
