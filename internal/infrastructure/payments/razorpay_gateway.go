package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"apnaghar/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")

// gatewayDeadline bounds every gateway RPC. An exceeded deadline surfaces to
// the orchestrator as GatewayUnavailable; the in-flight call is left to
// complete and its outcome is logged.
const gatewayDeadline = 30 * time.Second

// RazorpayGateway implements interfaces.IPaymentGateway on top of the
// Razorpay SDK. Amounts cross this adapter in paise.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / RAZORPAY_MOCK) synthesizes captured
// orders/payments/refunds for local development, mirroring how the rest of
// the infrastructure adapters handle missing upstreams.
type RazorpayGateway struct {
	client        *razorpay.Client
	keySecret     string
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keySecret: keySecret, webhookSecret: webhookSecret, mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] razorpay client initialized key_id=%s", keyID)
	return &RazorpayGateway{
		client:        razorpay.NewClient(keyID, keySecret),
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]interface{}) (interfaces.GatewayOrder, error) {
	if g.mockMode {
		id := "order_" + mockID()
		log.Printf("[payment][gateway] mock order created order_id=%s amount=%d", id, amountMinor)
		return interfaces.GatewayOrder{ID: id, Amount: amountMinor}, nil
	}

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	log.Printf("[payment][gateway] order create start receipt=%s amount=%d", receipt, amountMinor)
	body, err := callWithDeadline(ctx, "order.create", func() (map[string]interface{}, error) {
		return g.client.Order.Create(data, nil)
	})
	if err != nil {
		log.Printf("[payment][gateway] order create failed receipt=%s err=%v", receipt, err)
		return interfaces.GatewayOrder{}, err
	}

	order := interfaces.GatewayOrder{
		ID:     stringField(body, "id"),
		Amount: intField(body, "amount"),
		Raw:    body,
	}
	if order.ID == "" {
		return interfaces.GatewayOrder{}, fmt.Errorf("gateway order response missing id: %v", body)
	}
	log.Printf("[payment][gateway] order create success receipt=%s order_id=%s", receipt, order.ID)
	return order, nil
}

func (g *RazorpayGateway) FetchPayment(ctx context.Context, gatewayPaymentID string) (interfaces.GatewayPayment, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock payment fetch payment_id=%s", gatewayPaymentID)
		return interfaces.GatewayPayment{ID: gatewayPaymentID, Status: "captured"}, nil
	}

	log.Printf("[payment][gateway] payment fetch start payment_id=%s", gatewayPaymentID)
	body, err := callWithDeadline(ctx, "payment.fetch", func() (map[string]interface{}, error) {
		return g.client.Payment.Fetch(gatewayPaymentID, nil, nil)
	})
	if err != nil {
		log.Printf("[payment][gateway] payment fetch failed payment_id=%s err=%v", gatewayPaymentID, err)
		return interfaces.GatewayPayment{}, err
	}

	p := interfaces.GatewayPayment{
		ID:               stringField(body, "id"),
		OrderID:          stringField(body, "order_id"),
		Status:           stringField(body, "status"),
		Amount:           intField(body, "amount"),
		ErrorCode:        stringField(body, "error_code"),
		ErrorDescription: stringField(body, "error_description"),
	}
	log.Printf("[payment][gateway] payment fetch success payment_id=%s status=%s", p.ID, p.Status)
	return p, nil
}

func (g *RazorpayGateway) CreateRefund(ctx context.Context, gatewayPaymentID string, amountMinor int64, notes map[string]interface{}) (interfaces.GatewayRefund, error) {
	if g.mockMode {
		id := "rfnd_" + mockID()
		log.Printf("[payment][gateway] mock refund created refund_id=%s payment_id=%s amount=%d", id, gatewayPaymentID, amountMinor)
		return interfaces.GatewayRefund{ID: id, PaymentID: gatewayPaymentID, Status: "processed", Amount: amountMinor}, nil
	}

	data := map[string]interface{}{}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	log.Printf("[payment][gateway] refund create start payment_id=%s amount=%d", gatewayPaymentID, amountMinor)
	body, err := callWithDeadline(ctx, "refund.create", func() (map[string]interface{}, error) {
		return g.client.Payment.Refund(gatewayPaymentID, int(amountMinor), data, nil)
	})
	if err != nil {
		log.Printf("[payment][gateway] refund create failed payment_id=%s err=%v", gatewayPaymentID, err)
		return interfaces.GatewayRefund{}, err
	}

	r := interfaces.GatewayRefund{
		ID:        stringField(body, "id"),
		PaymentID: stringField(body, "payment_id"),
		Status:    stringField(body, "status"),
		Amount:    intField(body, "amount"),
	}
	log.Printf("[payment][gateway] refund create success refund_id=%s status=%s", r.ID, r.Status)
	return r, nil
}

// VerifyPaymentSignature checks the client-side checkout signature:
// HMAC-SHA256 over "{order_id}|{payment_id}" under the key secret.
func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return VerifyHMACSHA256([]byte(g.keySecret), []byte(orderID+"|"+paymentID), signature)
}

// VerifyWebhookSignature checks HMAC-SHA256 over the raw webhook body under
// the webhook secret.
func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if len(body) == 0 || signature == "" {
		return false
	}
	return VerifyHMACSHA256([]byte(g.webhookSecret), body, signature)
}

// callWithDeadline runs a gateway call with a bounded deadline. The SDK does
// not take a context, so the call is not aborted on timeout: it finishes in
// the background and its late outcome is logged, while the caller gets
// interfaces.ErrGatewayUnavailable and leaves the payment in its prior state.
func callWithDeadline(ctx context.Context, op string, call func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := call()
		done <- result{body, err}
	}()

	timer := time.NewTimer(gatewayDeadline)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.body, r.err
	case <-ctx.Done():
	case <-timer.C:
	}

	go func() {
		r := <-done
		log.Printf("[payment][gateway] late completion op=%s err=%v", op, r.err)
	}()
	return nil, interfaces.ErrGatewayUnavailable
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intField(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func mockID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
