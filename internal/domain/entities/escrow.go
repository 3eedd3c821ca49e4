package entities

import (
	"fmt"
	"time"
)

type EscrowStatus string

const (
	EscrowStatusIntentCreated EscrowStatus = "intent_created"
	EscrowStatusAuthorized    EscrowStatus = "authorized"
	EscrowStatusReleased      EscrowStatus = "released"
	EscrowStatusRefunded      EscrowStatus = "refunded"
)

// EscrowAction names a provider call in flight against an escrow.
type EscrowAction string

const (
	EscrowActionRelease EscrowAction = "release"
	EscrowActionRefund  EscrowAction = "refund"
)

// EscrowClaimTTL bounds how long a claim blocks other actions. A claim older than
// this is treated as abandoned by a crashed caller.
const EscrowClaimTTL = 2 * time.Minute

// Split tells the provider how to divide the held amount on release.
type Split struct {
	PlatformFeeMinorUnits int64  `json:"platform_fee_minor_units"`
	SellerAccountRef      string `json:"seller_account_ref"`
}

// Escrow is the provider hold backing a transaction. Amounts are in minor units (centavos).
type Escrow struct {
	ID               string         `json:"id"`
	TransactionID    string         `json:"transaction_id"`
	Provider         string         `json:"provider"`
	ProviderIntentID string         `json:"provider_intent_id"`
	AmountMinorUnits int64          `json:"amount_minor_units"`
	FeeMinorUnits    int64          `json:"fee_minor_units"`
	Split            Split          `json:"split"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	Status           EscrowStatus   `json:"status"`
	RefundReason     *string        `json:"refund_reason,omitempty"`

	// PendingAction is set while a release or refund is being sent to the provider.
	PendingAction EscrowAction `json:"pending_action,omitempty"`
	PendingSince  *time.Time   `json:"pending_since,omitempty"`

	AuthorizedAt *time.Time `json:"authorized_at,omitempty"`
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	RefundedAt   *time.Time `json:"refunded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Version int64 `json:"version"`
}

func (e *Escrow) Authorize(now time.Time) error {
	if e.Status != EscrowStatusIntentCreated {
		return fmt.Errorf("%w: escrow %s is %s", ErrInvalidTransition, e.ID, e.Status)
	}
	e.Status = EscrowStatusAuthorized
	e.AuthorizedAt = &now
	e.UpdatedAt = now
	return nil
}

func (e *Escrow) Release(now time.Time) error {
	if e.Status != EscrowStatusAuthorized {
		return fmt.Errorf("%w: escrow %s is %s", ErrInvalidTransition, e.ID, e.Status)
	}
	e.Status = EscrowStatusReleased
	e.ReleasedAt = &now
	e.clearClaim()
	e.UpdatedAt = now
	return nil
}

func (e *Escrow) Refund(reason string, now time.Time) error {
	if e.Status != EscrowStatusIntentCreated && e.Status != EscrowStatusAuthorized {
		return fmt.Errorf("%w: escrow %s is %s", ErrInvalidTransition, e.ID, e.Status)
	}
	e.Status = EscrowStatusRefunded
	if reason != "" {
		e.RefundReason = &reason
	}
	e.RefundedAt = &now
	e.UpdatedAt = now
	e.clearClaim()
	return nil
}

// ActiveClaim returns the action currently holding the escrow, ignoring stale claims.
func (e Escrow) ActiveClaim(now time.Time) EscrowAction {
	if e.PendingAction == "" || e.PendingSince == nil {
		return ""
	}
	if now.Sub(*e.PendingSince) > EscrowClaimTTL {
		return ""
	}
	return e.PendingAction
}

// Claim reserves the escrow for action. Only one release or refund may be in
// flight; the caller persists the claim with a version-checked write before
// calling the provider.
func (e *Escrow) Claim(action EscrowAction, now time.Time) error {
	if held := e.ActiveClaim(now); held != "" {
		return fmt.Errorf("%w: escrow %s has a %s in progress", ErrStateTransitionDenied, e.ID, held)
	}
	e.PendingAction = action
	e.PendingSince = &now
	e.UpdatedAt = now
	return nil
}

// HoldsClaim reports whether action still owns the escrow.
func (e Escrow) HoldsClaim(action EscrowAction) bool {
	return e.PendingAction == action
}

// DropClaim gives the escrow back after a failed provider call.
func (e *Escrow) DropClaim(action EscrowAction, now time.Time) bool {
	if e.PendingAction != action {
		return false
	}
	e.clearClaim()
	e.UpdatedAt = now
	return true
}

func (e *Escrow) clearClaim() {
	e.PendingAction = ""
	e.PendingSince = nil
}
