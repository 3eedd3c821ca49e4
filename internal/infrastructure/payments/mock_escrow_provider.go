package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const MockProviderName = "mock"

var (
	ErrUnknownIntent     = errors.New("unknown intent")
	ErrIntentNotSettable = errors.New("intent already settled")
)

// MockEscrowProvider simulates a provider that authorizes every intent it is told about.
//
// Webhook deliveries carry the intent id in the intentId query parameter or in a JSON
// body {"intentId": "...", "status": "authorized", "eventId": "..."}; status defaults
// to authorized.
type MockEscrowProvider struct {
	mu      sync.Mutex
	intents map[string]entities.EscrowStatus
}

var _ interfaces.IEscrowProvider = (*MockEscrowProvider)(nil)

func NewMockEscrowProvider() *MockEscrowProvider {
	return &MockEscrowProvider{intents: map[string]entities.EscrowStatus{}}
}

func (p *MockEscrowProvider) Name() string {
	return MockProviderName
}

func (p *MockEscrowProvider) CreateIntent(_ context.Context, req interfaces.CreateIntentRequest) (interfaces.CreateIntentResult, error) {
	id := "intent_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	p.mu.Lock()
	p.intents[id] = entities.EscrowStatusIntentCreated
	p.mu.Unlock()
	log.Printf("[escrow][mock] intent created transaction_id=%s intent_id=%s amount=%d platform_fee=%d", req.TransactionID, id, req.AmountMinorUnits, req.Split.PlatformFeeMinorUnits)
	return interfaces.CreateIntentResult{ProviderIntentID: id, Status: entities.EscrowStatusIntentCreated}, nil
}

type mockWebhookBody struct {
	IntentID string `json:"intentId"`
	Status   string `json:"status"`
	EventID  string `json:"eventId"`
}

func (p *MockEscrowProvider) ParseWebhook(_ context.Context, req interfaces.WebhookRequest) (interfaces.WebhookNotification, error) {
	var body mockWebhookBody
	if len(strings.TrimSpace(string(req.Body))) > 0 {
		if err := json.Unmarshal(req.Body, &body); err != nil {
			log.Printf("[escrow][mock] webhook body is not json err=%v", err)
		}
	}
	intentID := strings.TrimSpace(req.Query["intentId"])
	if intentID == "" {
		intentID = strings.TrimSpace(body.IntentID)
	}
	providerStatus := strings.ToLower(strings.TrimSpace(body.Status))
	if providerStatus == "" {
		providerStatus = string(entities.EscrowStatusAuthorized)
	}

	n := interfaces.WebhookNotification{
		ProviderEventID:  strings.TrimSpace(body.EventID),
		ProviderIntentID: intentID,
		ProviderStatus:   providerStatus,
	}
	if providerStatus == string(entities.EscrowStatusAuthorized) {
		n.Status = entities.EscrowStatusAuthorized
		p.mu.Lock()
		if cur, ok := p.intents[intentID]; ok && cur == entities.EscrowStatusIntentCreated {
			p.intents[intentID] = entities.EscrowStatusAuthorized
		}
		p.mu.Unlock()
	}
	return n, nil
}

func (p *MockEscrowProvider) Release(_ context.Context, providerIntentID string, split entities.Split) error {
	if err := p.set(providerIntentID, entities.EscrowStatusReleased); err != nil {
		return err
	}
	log.Printf("[escrow][mock] released intent_id=%s platform_fee=%d seller_account=%s", providerIntentID, split.PlatformFeeMinorUnits, split.SellerAccountRef)
	return nil
}

func (p *MockEscrowProvider) Refund(_ context.Context, providerIntentID string, reason string) error {
	if err := p.set(providerIntentID, entities.EscrowStatusRefunded); err != nil {
		return err
	}
	log.Printf("[escrow][mock] refunded intent_id=%s reason=%q", providerIntentID, reason)
	return nil
}

// IntentStatus reports what the simulated provider believes about an intent.
func (p *MockEscrowProvider) IntentStatus(providerIntentID string) (entities.EscrowStatus, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.intents[providerIntentID]
	return s, ok
}

// set settles an open intent. Like a real capture or cancel, it fails once the
// intent is released or refunded.
func (p *MockEscrowProvider) set(providerIntentID string, status entities.EscrowStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur, ok := p.intents[providerIntentID]
	if !ok {
		return ErrUnknownIntent
	}
	if cur != entities.EscrowStatusIntentCreated && cur != entities.EscrowStatusAuthorized {
		return fmt.Errorf("%w: intent %s is %s", ErrIntentNotSettable, providerIntentID, cur)
	}
	p.intents[providerIntentID] = status
	return nil
}
