package memory

import (
	"context"
	"maps"
	"sync"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
)

// Store is an in-process implementation of every repository and of the unit of work.
//
// WithinTransaction holds the store lock for the whole callback and works on a
// copy of the data, which replaces the live data only when the callback succeeds.
// Transactions are therefore serializable and a failed callback leaves no trace.
// Callbacks must not open nested transactions.
type Store struct {
	mu   sync.Mutex
	data *state
}

type state struct {
	quotas       map[string]entities.Quota
	proposals    map[string]entities.Proposal
	transactions map[string]entities.Transaction
	contracts    map[string]entities.Contract
	escrows      map[string]entities.Escrow
	kycCases     map[string]entities.KycCase
	trust        map[string]entities.UserTrust
}

var _ interfaces.IUnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: &state{
		quotas:       map[string]entities.Quota{},
		proposals:    map[string]entities.Proposal{},
		transactions: map[string]entities.Transaction{},
		contracts:    map[string]entities.Contract{},
		escrows:      map[string]entities.Escrow{},
		kycCases:     map[string]entities.KycCase{},
		trust:        map[string]entities.UserTrust{},
	}}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos interfaces.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, work.repositories()); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (st *state) clone() *state {
	return &state{
		quotas:       maps.Clone(st.quotas),
		proposals:    maps.Clone(st.proposals),
		transactions: maps.Clone(st.transactions),
		contracts:    maps.Clone(st.contracts),
		escrows:      maps.Clone(st.escrows),
		kycCases:     maps.Clone(st.kycCases),
		trust:        maps.Clone(st.trust),
	}
}

func (st *state) repositories() interfaces.Repositories {
	return interfaces.Repositories{
		Quotas:       &quotaRepository{st: st},
		Proposals:    &proposalRepository{st: st},
		Transactions: &transactionRepository{st: st},
		Contracts:    &contractRepository{st: st},
		Escrows:      &escrowRepository{st: st},
		KycCases:     &kycCaseRepository{st: st},
		UserTrust:    &userTrustRepository{st: st},
	}
}
