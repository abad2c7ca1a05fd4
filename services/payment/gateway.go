package payment

import (
	"context"
	"errors"
)

// ErrVerificationFailed is returned when the gateway rejects a payment
// signature. The booking is left untouched by callers.
var ErrVerificationFailed = errors.New("payment signature verification failed")

// Gateway is the narrow capability consumed from the payment provider:
// creating an order for an amount in minor units and verifying a completed
// payment's signature.
type Gateway interface {
	// CreateOrder registers a payable order and returns the provider's order
	// identifier. Amount is in minor units (paise for INR).
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)

	// VerifySignature checks the provider's signature over the
	// (orderID, paymentID) pair. Returns ErrVerificationFailed on mismatch.
	VerifySignature(orderID, paymentID, signature string) error

	// KeyID is the public key the client needs to open the checkout.
	KeyID() string
}
