package memory

import (
	"context"
	"sync"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
)

// WebhookJournal keeps provider deliveries in memory.
type WebhookJournal struct {
	mu     sync.Mutex
	events map[string]entities.WebhookEvent
}

var _ interfaces.IWebhookEventRepository = (*WebhookJournal)(nil)

func NewWebhookJournal() *WebhookJournal {
	return &WebhookJournal{events: map[string]entities.WebhookEvent{}}
}

func (j *WebhookJournal) Append(_ context.Context, e entities.WebhookEvent) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.events[e.ID]; ok {
		return false, nil
	}
	j.events[e.ID] = e
	return true, nil
}

func (j *WebhookJournal) UpdateOutcome(_ context.Context, id string, outcome entities.WebhookOutcome, detail string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	e, ok := j.events[id]
	if !ok {
		return nil
	}
	e.Outcome = outcome
	e.Detail = detail
	e.UpdatedAt = time.Now().UTC()
	j.events[id] = e
	return nil
}

func (j *WebhookJournal) Get(id string) (entities.WebhookEvent, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	e, ok := j.events[id]
	return e, ok
}

func (j *WebhookJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.events)
}
