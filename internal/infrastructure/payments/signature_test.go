package payments

import "testing"

func TestSignatureRoundTrip(t *testing.T) {
	secret := []byte("test_key_secret")

	t.Run("valid pair verifies", func(t *testing.T) {
		msg := []byte("order_ABC123|pay_XYZ789")
		sig := SignHMACSHA256(secret, msg)
		if !VerifyHMACSHA256(secret, msg, sig) {
			t.Fatalf("expected signature to verify")
		}
	})

	t.Run("tampered message fails", func(t *testing.T) {
		sig := SignHMACSHA256(secret, []byte("order_ABC123|pay_XYZ789"))
		if VerifyHMACSHA256(secret, []byte("order_ABC123|pay_OTHER"), sig) {
			t.Fatalf("expected tampered message to fail verification")
		}
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		msg := []byte("order_ABC123|pay_XYZ789")
		sig := SignHMACSHA256(secret, msg)
		if VerifyHMACSHA256([]byte("other_secret"), msg, sig) {
			t.Fatalf("expected wrong-secret verification to fail")
		}
	})

	t.Run("empty signature fails", func(t *testing.T) {
		if VerifyHMACSHA256(secret, []byte("body"), "") {
			t.Fatalf("expected empty signature to fail")
		}
	})
}

func TestGatewaySignatureHelpers(t *testing.T) {
	g := &RazorpayGateway{keySecret: "key_secret", webhookSecret: "webhook_secret", mockMode: true}

	t.Run("payment signature", func(t *testing.T) {
		sig := SignHMACSHA256([]byte("key_secret"), []byte("order_1|pay_1"))
		if !g.VerifyPaymentSignature("order_1", "pay_1", sig) {
			t.Fatalf("expected payment signature to verify")
		}
		if g.VerifyPaymentSignature("order_1", "pay_2", sig) {
			t.Fatalf("expected mismatched payment id to fail")
		}
		if g.VerifyPaymentSignature("", "pay_1", sig) {
			t.Fatalf("expected empty order id to fail")
		}
	})

	t.Run("webhook signature", func(t *testing.T) {
		body := []byte(`{"event":"payment.captured"}`)
		sig := SignHMACSHA256([]byte("webhook_secret"), body)
		if !g.VerifyWebhookSignature(body, sig) {
			t.Fatalf("expected webhook signature to verify")
		}
		if g.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), sig) {
			t.Fatalf("expected altered body to fail")
		}
	})
}
