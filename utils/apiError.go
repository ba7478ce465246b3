package utils

import "net/http"

// APIError is the one error shape every handler renders: an HTTP status, a
// stable machine code and a human-readable message.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// Business-rule and validation errors. All detected before any persistent
// mutation.
var (
	ErrCartEmpty          = NewAPIError(http.StatusBadRequest, "cart_empty", "Cart is empty")
	ErrCouponOnEmptyCart  = NewAPIError(http.StatusBadRequest, "coupon_on_empty_cart", "You cannot use coupon on empty cart")
	ErrCouponNotExist     = NewAPIError(http.StatusBadRequest, "coupon_not_exist", "Coupon does not exist.")
	ErrCouponExpired      = NewAPIError(http.StatusBadRequest, "coupon_expired", "Coupon is no longer valid.")
	ErrProductNotExist    = NewAPIError(http.StatusBadRequest, "product_not_exist", "Product does not exist.")
	ErrInvalidCredentials = NewAPIError(http.StatusUnauthorized, "invalid_credentials", "Invalid credentials.")
)

// Payment error kinds, keyed by the provider-reported category.
const (
	CodeCardError           = "card_error"
	CodeRateLimitError      = "rate_limit_error"
	CodeInvalidRequestError = "invalid_request"
	CodeAuthenticationError = "authentication_error"
	CodeAPIConnectionError  = "api_connection_error"
	CodePaymentError        = "payment_error"
)

// PaymentError maps a provider error category to an internal error kind
// carrying the provider's message.
func PaymentError(providerType, message string) *APIError {
	switch providerType {
	case "card_error":
		return NewAPIError(http.StatusBadRequest, CodeCardError, message)
	case "rate_limit_error":
		return NewAPIError(http.StatusTooManyRequests, CodeRateLimitError, message)
	case "invalid_request_error":
		return NewAPIError(http.StatusBadRequest, CodeInvalidRequestError, message)
	case "authentication_error":
		return NewAPIError(http.StatusUnauthorized, CodeAuthenticationError, message)
	case "api_connection_error":
		return NewAPIError(http.StatusBadGateway, CodeAPIConnectionError, message)
	default:
		if message == "" {
			message = "Something went wrong. You were not charged. Please try again."
		}
		return NewAPIError(http.StatusInternalServerError, CodePaymentError, message)
	}
}

// InsufficientStock names the offending product, per the all-or-nothing
// checkout rule.
func InsufficientStock(productName string) *APIError {
	return NewAPIError(http.StatusBadRequest, "insufficient_stock", "Not enough stock for "+productName)
}
