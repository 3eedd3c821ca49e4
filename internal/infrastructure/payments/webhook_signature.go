package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"cartas_marketplace/internal/usecase/interfaces"
)

// VerifyMercadoPagoSignature checks an x-signature header ("ts=...,v1=...") against
// the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;". Mercado Pago omits
// manifest parts whose value is empty.
func VerifyMercadoPagoSignature(secret, header, requestID, dataID string) error {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed header", interfaces.ErrInvalidWebhookSignature)
	}

	got, err := hex.DecodeString(v1)
	if err != nil {
		return fmt.Errorf("%w: v1 is not hex", interfaces.ErrInvalidWebhookSignature)
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(mercadoPagoManifest(requestID, dataID, ts)))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return interfaces.ErrInvalidWebhookSignature
	}
	return nil
}

// SignMercadoPagoManifest produces the v1 value for a manifest. Used by local tooling and tests.
func SignMercadoPagoManifest(secret, requestID, dataID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(mercadoPagoManifest(requestID, dataID, ts)))
	return hex.EncodeToString(mac.Sum(nil))
}

func mercadoPagoManifest(requestID, dataID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}
