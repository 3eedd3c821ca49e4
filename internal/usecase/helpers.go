package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cartas_marketplace/internal/usecase/interfaces"
)

const maxVersionAttempts = 3

// retryOnVersionConflict re-runs fn while it fails with a version conflict.
// fn must re-read everything it writes, since each run is a fresh persistence transaction.
func retryOnVersionConflict(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxVersionAttempts; attempt++ {
		err = fn()
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return err
		}
		log.Printf("[usecase] version conflict op=%s attempt=%d", op, attempt)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("%w: %v", ErrConcurrentModification, err)
}

func notify(ctx context.Context, n interfaces.INotifier, template string, payload map[string]any, userIDs ...string) {
	if n == nil {
		return
	}
	for _, userID := range userIDs {
		if userID == "" {
			continue
		}
		if err := n.Notify(ctx, userID, template, payload); err != nil {
			log.Printf("[notify] delivery failed template=%s user_id=%s err=%v", template, userID, err)
		}
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
