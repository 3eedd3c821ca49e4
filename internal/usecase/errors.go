package usecase

import (
	"errors"
	"fmt"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = policy.ErrDenied
	ErrConflict              = errors.New("conflict")
	ErrInvalidTransition     = entities.ErrInvalidTransition
	ErrStateTransitionDenied = entities.ErrStateTransitionDenied
	ErrProvider              = errors.New("escrow provider error")
	ErrInvalidInput          = errors.New("invalid input")
)

var (
	ErrQuotaNotFound       = fmt.Errorf("%w: quota", ErrNotFound)
	ErrProposalNotFound    = fmt.Errorf("%w: proposal", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrContractNotFound    = fmt.Errorf("%w: contract", ErrNotFound)
	ErrEscrowNotFound      = fmt.Errorf("%w: escrow", ErrNotFound)
	ErrKycCaseNotFound     = fmt.Errorf("%w: kyc case", ErrNotFound)

	ErrQuotaSold              = fmt.Errorf("%w: quota already sold", ErrConflict)
	ErrConcurrentModification = fmt.Errorf("%w: concurrent modification", ErrConflict)
	ErrEscrowAlreadyReleased  = fmt.Errorf("%w: escrow already released", ErrConflict)

	ErrInvalidQuotaID       = fmt.Errorf("%w: quota id is required", ErrInvalidInput)
	ErrInvalidProposalID    = fmt.Errorf("%w: proposal id is required", ErrInvalidInput)
	ErrInvalidTransactionID = fmt.Errorf("%w: transaction id is required", ErrInvalidInput)
	ErrInvalidPremium       = fmt.Errorf("%w: premium must not be negative", ErrInvalidInput)
	ErrInvalidTermMonths    = fmt.Errorf("%w: term months must be at least 1", ErrInvalidInput)
	ErrInvalidSaleValue     = fmt.Errorf("%w: sale value must be positive", ErrInvalidInput)
	ErrInvalidCreditValue   = fmt.Errorf("%w: credit value must be positive", ErrInvalidInput)
	ErrInvalidInstallments  = fmt.Errorf("%w: installments paid must be between 0 and total", ErrInvalidInput)
	ErrInvalidSearchFilter  = fmt.Errorf("%w: search filter out of range", ErrInvalidInput)
	ErrInvalidDocumentURL   = fmt.Errorf("%w: document url is required", ErrInvalidInput)
	ErrInvalidEvidenceHash  = fmt.Errorf("%w: evidence hash is required", ErrInvalidInput)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrInvalidSplit         = fmt.Errorf("%w: platform fee must be between 0 and amount", ErrInvalidInput)
	ErrInvalidKycLevel      = fmt.Errorf("%w: kyc level must be between 1 and 3", ErrInvalidInput)
	ErrInvalidKycCaseID     = fmt.Errorf("%w: kyc case id is required", ErrInvalidInput)
	ErrInvalidReasonCode    = fmt.Errorf("%w: reason code is required", ErrInvalidInput)
)

func stepDenied(t entities.Transaction, want string) error {
	return fmt.Errorf("%w: transaction %s is %s, %s required", ErrStateTransitionDenied, t.ID, t.Status, want)
}
