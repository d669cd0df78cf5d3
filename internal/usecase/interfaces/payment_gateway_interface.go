package interfaces

import (
	"context"
	"errors"
)

// ErrGatewayUnavailable is returned by gateway implementations when a call
// does not complete within the gateway deadline.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// GatewayOrder is the gateway's order object, reduced to what the
// orchestrator consumes.
type GatewayOrder struct {
	ID     string
	Amount int64 // minor units (paise)
	Raw    map[string]interface{}
}

// GatewayPayment is the gateway's payment object. Status is the gateway's
// vocabulary (captured, authorized, failed, ...).
type GatewayPayment struct {
	ID               string
	OrderID          string
	Status           string
	Amount           int64
	ErrorCode        string
	ErrorDescription string
}

// GatewayRefund is the gateway's refund object.
type GatewayRefund struct {
	ID        string
	PaymentID string
	Status    string
	Amount    int64
}

// IPaymentGateway abstracts the hosted payment gateway (Razorpay-shaped
// contract). Amounts cross this boundary in minor units. Signature
// verification lives here so gateway secrets never leave the adapter.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]interface{}) (GatewayOrder, error)
	FetchPayment(ctx context.Context, gatewayPaymentID string) (GatewayPayment, error)
	CreateRefund(ctx context.Context, gatewayPaymentID string, amountMinor int64, notes map[string]interface{}) (GatewayRefund, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}
