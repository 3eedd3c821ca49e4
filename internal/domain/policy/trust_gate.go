package policy

import (
	"errors"
	"fmt"

	"cartas_marketplace/internal/domain/entities"
)

// Action names an operation guarded by the trust gate.
type Action string

const (
	ActionCreateQuota        Action = "quota.create"
	ActionCreateProposal     Action = "proposal.create"
	ActionCancelProposal     Action = "proposal.cancel"
	ActionAcceptProposal     Action = "proposal.accept"
	ActionViewTransaction    Action = "transaction.view"
	ActionCancelTransaction  Action = "transaction.cancel"
	ActionConfirmTransfer    Action = "transaction.confirm_transfer"
	ActionSignContract       Action = "contract.sign"
	ActionViewContract       Action = "contract.view"
	ActionCreateEscrowIntent Action = "escrow.intent"
	ActionReleaseEscrow      Action = "escrow.release"
	ActionRefundEscrow       Action = "escrow.refund"
	ActionStartKyc           Action = "kyc.start"
	ActionReviewKyc          Action = "kyc.review"
)

// ErrDenied is wrapped by every refusal the gate returns.
var ErrDenied = errors.New("forbidden")

var (
	ErrUnauthenticated = fmt.Errorf("%w: missing principal", ErrDenied)
	ErrRoleNotAllowed  = fmt.Errorf("%w: role not allowed", ErrDenied)
	ErrNotParticipant  = fmt.Errorf("%w: not a participant", ErrDenied)
	ErrSelfDealing     = fmt.Errorf("%w: cannot bid on own quota", ErrDenied)
	ErrKycLevelTooLow  = fmt.Errorf("%w: kyc level too low", ErrDenied)
	ErrMfaRequired     = fmt.Errorf("%w: mfa required", ErrDenied)
	ErrUnknownAction   = fmt.Errorf("%w: unknown action", ErrDenied)
)

// Subject identifies the parties of the resource being acted on.
// For proposal actions BuyerID is the proposal's buyer and SellerID the quota's seller;
// for transaction actions they are the transaction's parties.
type Subject struct {
	BuyerID  string
	SellerID string
}

func (s Subject) involves(userID string) bool {
	return userID != "" && (s.BuyerID == userID || s.SellerID == userID)
}

// Rules holds the configurable trust thresholds.
type Rules struct {
	MinKycToPropose      int
	MinKycToAccept       int
	MinKycForEscrow      int
	RequireMfaForRelease bool
}

func DefaultRules() Rules {
	return Rules{
		MinKycToPropose: 1,
		MinKycToAccept:  1,
		MinKycForEscrow: 1,
	}
}

// Gate is the single authorization predicate. It holds no state besides its rules
// and performs no I/O.
type Gate struct {
	rules Rules
}

func NewGate(rules Rules) Gate {
	return Gate{rules: rules}
}

func (g Gate) Rules() Rules {
	return g.rules
}

func (g Gate) Authorize(p entities.Principal, action Action, s Subject) error {
	if p.UserID == "" || !p.Role.Valid() {
		return ErrUnauthenticated
	}

	switch action {
	case ActionStartKyc:
		return nil

	case ActionReviewKyc:
		if !p.IsAdmin() {
			return ErrRoleNotAllowed
		}
		return nil

	case ActionCreateQuota:
		return requireRole(p, entities.RoleSeller)

	case ActionCreateProposal:
		if err := requireRole(p, entities.RoleBuyer); err != nil {
			return err
		}
		if s.SellerID != "" && s.SellerID == p.UserID {
			return ErrSelfDealing
		}
		return requireKyc(p, g.rules.MinKycToPropose)

	case ActionCancelProposal:
		return requireParticipant(p, s)

	case ActionAcceptProposal:
		if !p.IsAdmin() && s.SellerID != p.UserID {
			return ErrNotParticipant
		}
		return requireKyc(p, g.rules.MinKycToAccept)

	case ActionViewTransaction, ActionCancelTransaction, ActionConfirmTransfer, ActionSignContract, ActionViewContract:
		return requireParticipant(p, s)

	case ActionCreateEscrowIntent:
		if !p.IsAdmin() && s.BuyerID != p.UserID {
			return ErrNotParticipant
		}
		return requireKyc(p, g.rules.MinKycForEscrow)

	case ActionReleaseEscrow, ActionRefundEscrow:
		if err := requireParticipant(p, s); err != nil {
			return err
		}
		if g.rules.RequireMfaForRelease {
			return requireMfa(p)
		}
		return nil
	}

	return ErrUnknownAction
}

// requireRole accepts the given role or admin.
func requireRole(p entities.Principal, role entities.Role) error {
	if p.IsAdmin() || p.Role == role {
		return nil
	}
	return ErrRoleNotAllowed
}

func requireParticipant(p entities.Principal, s Subject) error {
	if p.IsAdmin() || s.involves(p.UserID) {
		return nil
	}
	return ErrNotParticipant
}

func requireKyc(p entities.Principal, min int) error {
	if p.IsAdmin() || p.KycLevel >= min {
		return nil
	}
	return ErrKycLevelTooLow
}

func requireMfa(p entities.Principal) error {
	if p.IsAdmin() || p.MfaEnabled {
		return nil
	}
	return ErrMfaRequired
}
