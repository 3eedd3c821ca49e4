package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const MercadoPagoProviderName = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidMercadoPagoIntentID = errors.New("invalid mercado pago payment id")

// MercadoPagoOptions configures the Mercado Pago escrow provider.
type MercadoPagoOptions struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
	PaymentMethodID string
	PayerEmail      string
}

// MercadoPagoEscrowProvider holds funds as an authorized-but-uncaptured payment.
// Release captures it, refund cancels it. The payment id is the intent id and the
// transaction id travels as external_reference.
type MercadoPagoEscrowProvider struct {
	client payment.Client
	opts   MercadoPagoOptions
}

var _ interfaces.IEscrowProvider = (*MercadoPagoEscrowProvider)(nil)

func NewMercadoPagoEscrowProvider(opts MercadoPagoOptions) (*MercadoPagoEscrowProvider, error) {
	if strings.TrimSpace(opts.AccessToken) == "" {
		log.Printf("[escrow][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Printf("[escrow][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[escrow][mercadopago] client initialized")

	return newMercadoPagoEscrowProvider(payment.NewClient(cfg), opts), nil
}

func newMercadoPagoEscrowProvider(client payment.Client, opts MercadoPagoOptions) *MercadoPagoEscrowProvider {
	if opts.PaymentMethodID == "" {
		opts.PaymentMethodID = "pix"
	}
	if opts.PayerEmail == "" {
		opts.PayerEmail = sandboxPayerEmail(opts.AccessToken)
	}
	return &MercadoPagoEscrowProvider{client: client, opts: opts}
}

func (g *MercadoPagoEscrowProvider) Name() string {
	return MercadoPagoProviderName
}

func (g *MercadoPagoEscrowProvider) CreateIntent(ctx context.Context, req interfaces.CreateIntentRequest) (interfaces.CreateIntentResult, error) {
	if g == nil || g.client == nil {
		return interfaces.CreateIntentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[escrow][mercadopago] create-intent start transaction_id=%s amount=%d", req.TransactionID, req.AmountMinorUnits)

	metadata := map[string]any{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["transaction_id"] = req.TransactionID
	metadata["platform_fee_minor_units"] = req.Split.PlatformFeeMinorUnits
	metadata["seller_account_ref"] = req.Split.SellerAccountRef

	body := map[string]any{
		"transaction_amount": float64(req.AmountMinorUnits) / 100,
		"description":        fmt.Sprintf("Carta transaction %s", req.TransactionID),
		"external_reference": req.TransactionID,
		"payment_method_id":  g.opts.PaymentMethodID,
		"capture":            false,
		"metadata":           metadata,
	}
	if g.opts.NotificationURL != "" {
		body["notification_url"] = g.opts.NotificationURL
	}
	if g.opts.PayerEmail != "" {
		body["payer"] = map[string]any{"email": g.opts.PayerEmail}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.CreateIntentResult{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(raw, &mpReq); err != nil {
		log.Printf("[escrow][mercadopago] payload unmarshal failed err=%v", err)
		return interfaces.CreateIntentResult{}, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[escrow][mercadopago] sdk create failed transaction_id=%s err=%v", req.TransactionID, err)
		return interfaces.CreateIntentResult{}, err
	}
	log.Printf("[escrow][mercadopago] create-intent success transaction_id=%s payment_id=%d status=%s", req.TransactionID, resp.ID, resp.Status)

	return interfaces.CreateIntentResult{
		ProviderIntentID: strconv.Itoa(resp.ID),
		Status:           entities.EscrowStatusIntentCreated,
	}, nil
}

type mercadoPagoNotification struct {
	ID     json.Number `json:"id"`
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// ParseWebhook verifies the x-signature header when a secret is configured, then
// reads the payment back from Mercado Pago. The delivery body is only used to learn
// which payment to read.
func (g *MercadoPagoEscrowProvider) ParseWebhook(ctx context.Context, req interfaces.WebhookRequest) (interfaces.WebhookNotification, error) {
	if g == nil || g.client == nil {
		return interfaces.WebhookNotification{}, ErrMercadoPagoGatewayNotConfigured
	}

	var body mercadoPagoNotification
	if len(strings.TrimSpace(string(req.Body))) > 0 {
		dec := json.NewDecoder(strings.NewReader(string(req.Body)))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			log.Printf("[escrow][mercadopago] webhook body decode failed err=%v", err)
		}
	}

	kind := body.Type
	if kind == "" {
		kind = req.Query["type"]
	}
	if kind == "" {
		kind = req.Query["topic"]
	}
	paymentID := body.Data.ID.String()
	if paymentID == "" {
		paymentID = req.Query["data.id"]
	}
	if paymentID == "" {
		paymentID = req.Query["id"]
	}

	eventID := body.ID.String()
	if eventID == "" {
		eventID = req.Headers.Get("x-request-id")
	}
	n := interfaces.WebhookNotification{ProviderEventID: eventID}

	if kind != "" && kind != "payment" {
		n.ProviderStatus = "topic:" + kind
		return n, nil
	}

	if g.opts.WebhookSecret != "" {
		if err := VerifyMercadoPagoSignature(g.opts.WebhookSecret, req.Headers.Get("x-signature"), req.Headers.Get("x-request-id"), paymentID); err != nil {
			log.Printf("[escrow][mercadopago] webhook signature rejected payment_id=%s err=%v", paymentID, err)
			return n, err
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return n, ErrInvalidMercadoPagoIntentID
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[escrow][mercadopago] sdk get failed payment_id=%d err=%v", id, err)
		return n, err
	}

	n.ProviderIntentID = strconv.Itoa(resp.ID)
	n.ProviderStatus = resp.Status
	n.Status = mapMercadoPagoStatus(resp.Status)
	log.Printf("[escrow][mercadopago] webhook parsed payment_id=%d status=%s", resp.ID, resp.Status)
	return n, nil
}

func (g *MercadoPagoEscrowProvider) Release(ctx context.Context, providerIntentID string, _ entities.Split) error {
	if g == nil || g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(providerIntentID)
	if err != nil {
		return ErrInvalidMercadoPagoIntentID
	}
	resp, err := g.client.Capture(ctx, id)
	if err != nil {
		log.Printf("[escrow][mercadopago] sdk capture failed payment_id=%d err=%v", id, err)
		return err
	}
	log.Printf("[escrow][mercadopago] captured payment_id=%d status=%s", resp.ID, resp.Status)
	return nil
}

func (g *MercadoPagoEscrowProvider) Refund(ctx context.Context, providerIntentID string, reason string) error {
	if g == nil || g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(providerIntentID)
	if err != nil {
		return ErrInvalidMercadoPagoIntentID
	}
	resp, err := g.client.Cancel(ctx, id)
	if err != nil {
		log.Printf("[escrow][mercadopago] sdk cancel failed payment_id=%d err=%v", id, err)
		return err
	}
	log.Printf("[escrow][mercadopago] cancelled payment_id=%d status=%s reason=%q", resp.ID, resp.Status, reason)
	return nil
}

// mapMercadoPagoStatus maps payment statuses onto the escrow flow. Only a held
// payment counts as authorization; every other status is reported but not acted on.
func mapMercadoPagoStatus(status string) entities.EscrowStatus {
	switch strings.ToLower(status) {
	case "authorized", "approved":
		return entities.EscrowStatusAuthorized
	}
	return ""
}

func sandboxPayerEmail(accessToken string) string {
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		return email
	}
	if strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-") {
		return "test_user_br@testuser.com"
	}
	return ""
}
