package payments

import (
	"context"
	"errors"
	"testing"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
)

func TestVerifyMercadoPagoSignature(t *testing.T) {
	secret := "s3cr3t"
	v1 := SignMercadoPagoManifest(secret, "req-1", "123456", "1704908010")

	t.Run("valid", func(t *testing.T) {
		if err := VerifyMercadoPagoSignature(secret, "ts=1704908010,v1="+v1, "req-1", "123456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tampered data id", func(t *testing.T) {
		err := VerifyMercadoPagoSignature(secret, "ts=1704908010,v1="+v1, "req-1", "999")
		if !errors.Is(err, interfaces.ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		err := VerifyMercadoPagoSignature(secret, "garbage", "req-1", "123456")
		if !errors.Is(err, interfaces.ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})
}

func TestMapMercadoPagoStatus(t *testing.T) {
	cases := map[string]entities.EscrowStatus{
		"authorized": entities.EscrowStatusAuthorized,
		"approved":   entities.EscrowStatusAuthorized,
		"pending":    "",
		"cancelled":  "",
		"rejected":   "",
	}
	for in, want := range cases {
		if got := mapMercadoPagoStatus(in); got != want {
			t.Fatalf("%s: expected %q, got %q", in, want, got)
		}
	}
}

func TestNewMercadoPagoEscrowProvider(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoEscrowProvider(MercadoPagoOptions{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("sandbox defaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		p := newMercadoPagoEscrowProvider(nil, MercadoPagoOptions{AccessToken: "TEST-123"})
		if p.opts.PaymentMethodID != "pix" || p.opts.PayerEmail != "test_user_br@testuser.com" {
			t.Fatalf("unexpected defaults: %+v", p.opts)
		}
		if _, err := p.CreateIntent(context.Background(), interfaces.CreateIntentRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
