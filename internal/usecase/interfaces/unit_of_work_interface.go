package interfaces

import "context"

// Repositories is the set of repositories bound to one persistence transaction.
type Repositories struct {
	Quotas       IQuotaRepository
	Proposals    IProposalRepository
	Transactions ITransactionRepository
	Contracts    IContractRepository
	Escrows      IEscrowRepository
	KycCases     IKycCaseRepository
	UserTrust    IUserTrustRepository
}

// IUnitOfWork runs fn inside one atomic persistence transaction. Every write made
// through the repositories handed to fn commits together, or none does when fn
// returns an error.
type IUnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
