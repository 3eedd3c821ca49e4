package memory

import (
	"context"
	"sort"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase/interfaces"
)

type quotaRepository struct{ st *state }

func (r *quotaRepository) Create(_ context.Context, q entities.Quota) (entities.Quota, error) {
	if _, ok := r.st.quotas[q.ID]; ok {
		return entities.Quota{}, interfaces.ErrDuplicate
	}
	q.Version = 1
	r.st.quotas[q.ID] = q
	return q, nil
}

func (r *quotaRepository) GetByID(_ context.Context, id string) (entities.Quota, error) {
	return r.st.quotas[id], nil
}

func (r *quotaRepository) Update(_ context.Context, q entities.Quota) (entities.Quota, error) {
	cur, ok := r.st.quotas[q.ID]
	if !ok || cur.Version != q.Version {
		return entities.Quota{}, interfaces.ErrVersionConflict
	}
	q.Version++
	r.st.quotas[q.ID] = q
	return q, nil
}

func (r *quotaRepository) ListAvailable(_ context.Context, f interfaces.QuotaFilter) ([]entities.Quota, error) {
	out := make([]entities.Quota, 0)
	for _, q := range r.st.quotas {
		if matchesQuota(q, f) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []entities.Quota{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matchesQuota(q entities.Quota, f interfaces.QuotaFilter) bool {
	switch {
	case !q.IsActionable():
		return false
	case f.AssetType != "" && q.AssetType != f.AssetType:
		return false
	case f.MinCreditValue != nil && q.CreditValue.LessThan(*f.MinCreditValue):
		return false
	case f.MaxCreditValue != nil && q.CreditValue.GreaterThan(*f.MaxCreditValue):
		return false
	case f.MinInstallmentsPaid != nil && q.InstallmentsPaid < *f.MinInstallmentsPaid:
		return false
	}
	return true
}

type proposalRepository struct{ st *state }

func (r *proposalRepository) Create(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	if _, ok := r.st.proposals[p.ID]; ok {
		return entities.Proposal{}, interfaces.ErrDuplicate
	}
	p.Version = 1
	r.st.proposals[p.ID] = p
	return p, nil
}

func (r *proposalRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	return r.st.proposals[id], nil
}

func (r *proposalRepository) ListByQuotaID(_ context.Context, quotaID string) ([]entities.Proposal, error) {
	out := make([]entities.Proposal, 0)
	for _, p := range r.st.proposals {
		if p.QuotaID == quotaID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *proposalRepository) Update(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	cur, ok := r.st.proposals[p.ID]
	if !ok || cur.Version != p.Version {
		return entities.Proposal{}, interfaces.ErrVersionConflict
	}
	p.Version++
	r.st.proposals[p.ID] = p
	return p, nil
}

type transactionRepository struct{ st *state }

func (r *transactionRepository) Create(_ context.Context, t entities.Transaction) (entities.Transaction, error) {
	for _, existing := range r.st.transactions {
		if existing.ID == t.ID || existing.ProposalID == t.ProposalID {
			return entities.Transaction{}, interfaces.ErrDuplicate
		}
	}
	t.Version = 1
	r.st.transactions[t.ID] = t
	return t, nil
}

func (r *transactionRepository) GetByID(_ context.Context, id string) (entities.Transaction, error) {
	return r.st.transactions[id], nil
}

func (r *transactionRepository) Update(_ context.Context, t entities.Transaction) (entities.Transaction, error) {
	cur, ok := r.st.transactions[t.ID]
	if !ok || cur.Version != t.Version {
		return entities.Transaction{}, interfaces.ErrVersionConflict
	}
	t.Version++
	r.st.transactions[t.ID] = t
	return t, nil
}

// contracts are keyed by transaction id.
type contractRepository struct{ st *state }

func (r *contractRepository) GetByTransactionID(_ context.Context, transactionID string) (entities.Contract, error) {
	return r.st.contracts[transactionID], nil
}

func (r *contractRepository) Upsert(_ context.Context, c entities.Contract) (entities.Contract, error) {
	if cur, ok := r.st.contracts[c.TransactionID]; ok {
		c.ID = cur.ID
		c.CreatedAt = cur.CreatedAt
	}
	r.st.contracts[c.TransactionID] = c
	return c, nil
}

type escrowRepository struct{ st *state }

func (r *escrowRepository) Create(_ context.Context, e entities.Escrow) (entities.Escrow, error) {
	for _, existing := range r.st.escrows {
		if existing.ID == e.ID || existing.TransactionID == e.TransactionID {
			return entities.Escrow{}, interfaces.ErrDuplicate
		}
		if e.ProviderIntentID != "" && existing.ProviderIntentID == e.ProviderIntentID {
			return entities.Escrow{}, interfaces.ErrDuplicate
		}
	}
	e.Version = 1
	r.st.escrows[e.ID] = e
	return e, nil
}

func (r *escrowRepository) GetByID(_ context.Context, id string) (entities.Escrow, error) {
	return r.st.escrows[id], nil
}

func (r *escrowRepository) GetByTransactionID(_ context.Context, transactionID string) (entities.Escrow, error) {
	for _, e := range r.st.escrows {
		if e.TransactionID == transactionID {
			return e, nil
		}
	}
	return entities.Escrow{}, nil
}

func (r *escrowRepository) GetByProviderIntentID(_ context.Context, providerIntentID string) (entities.Escrow, error) {
	if providerIntentID == "" {
		return entities.Escrow{}, nil
	}
	for _, e := range r.st.escrows {
		if e.ProviderIntentID == providerIntentID {
			return e, nil
		}
	}
	return entities.Escrow{}, nil
}

func (r *escrowRepository) Update(_ context.Context, e entities.Escrow) (entities.Escrow, error) {
	cur, ok := r.st.escrows[e.ID]
	if !ok || cur.Version != e.Version {
		return entities.Escrow{}, interfaces.ErrVersionConflict
	}
	e.Version++
	r.st.escrows[e.ID] = e
	return e, nil
}

type kycCaseRepository struct{ st *state }

func (r *kycCaseRepository) Create(_ context.Context, k entities.KycCase) (entities.KycCase, error) {
	if _, ok := r.st.kycCases[k.ID]; ok {
		return entities.KycCase{}, interfaces.ErrDuplicate
	}
	r.st.kycCases[k.ID] = k
	return k, nil
}

func (r *kycCaseRepository) GetByID(_ context.Context, id string) (entities.KycCase, error) {
	return r.st.kycCases[id], nil
}

func (r *kycCaseRepository) ListByStatus(_ context.Context, status entities.KycStatus) ([]entities.KycCase, error) {
	out := make([]entities.KycCase, 0)
	for _, k := range r.st.kycCases {
		if k.Status == status {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *kycCaseRepository) Update(_ context.Context, k entities.KycCase) (entities.KycCase, error) {
	if _, ok := r.st.kycCases[k.ID]; !ok {
		return entities.KycCase{}, interfaces.ErrVersionConflict
	}
	r.st.kycCases[k.ID] = k
	return k, nil
}

type userTrustRepository struct{ st *state }

func (r *userTrustRepository) Get(_ context.Context, userID string) (entities.UserTrust, error) {
	return r.st.trust[userID], nil
}

func (r *userTrustRepository) Upsert(_ context.Context, u entities.UserTrust) (entities.UserTrust, error) {
	r.st.trust[u.UserID] = u
	return u, nil
}
