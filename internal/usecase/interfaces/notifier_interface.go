package interfaces

import "context"

const (
	TemplateProposalCreated      = "proposal_created"
	TemplateProposalCancelled    = "proposal_cancelled"
	TemplateProposalAccepted     = "proposal_accepted"
	TemplateContractSigned       = "contract_signed"
	TemplateEscrowAuthorized     = "escrow_authorized"
	TemplateTransferConfirmed    = "transfer_confirmed"
	TemplateEscrowReleased       = "escrow_released"
	TemplateEscrowRefunded       = "escrow_refunded"
	TemplateTransactionCancelled = "transaction_cancelled"
	TemplateKycReviewed          = "kyc_reviewed"
)

// INotifier is a fire-and-forget sink. Callers log and otherwise ignore its errors.
type INotifier interface {
	Notify(ctx context.Context, userID string, template string, payload map[string]any) error
}
