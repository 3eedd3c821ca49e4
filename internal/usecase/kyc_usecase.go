package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	minKycLevel = 1
	maxKycLevel = 3
)

// IKycUseCase covers the effect of KYC review on a user's trust level. Scoring is
// done elsewhere; here an admin approves or rejects a case.
type IKycUseCase interface {
	Start(ctx context.Context, actor entities.Principal, levelRequested int) (entities.KycCase, error)
	List(ctx context.Context, actor entities.Principal, status entities.KycStatus) ([]entities.KycCase, error)
	Approve(ctx context.Context, actor entities.Principal, caseID string) (entities.KycCase, entities.UserTrust, error)
	Reject(ctx context.Context, actor entities.Principal, caseID string, r entities.KycRejection) (entities.KycCase, error)
	EffectiveKycLevel(ctx context.Context, userID string, claimed int) int
}

type KycUseCase struct {
	uow      interfaces.IUnitOfWork
	gate     policy.Gate
	cache    interfaces.ITrustLevelCache
	cacheTTL time.Duration
	notifier interfaces.INotifier
}

var _ IKycUseCase = (*KycUseCase)(nil)

// NewKycUseCase builds the use case. cache may be nil.
func NewKycUseCase(uow interfaces.IUnitOfWork, gate policy.Gate, cache interfaces.ITrustLevelCache, cacheTTL time.Duration, notifier interfaces.INotifier) *KycUseCase {
	return &KycUseCase{uow: uow, gate: gate, cache: cache, cacheTTL: cacheTTL, notifier: notifier}
}

func (u *KycUseCase) Start(ctx context.Context, actor entities.Principal, levelRequested int) (entities.KycCase, error) {
	if err := u.gate.Authorize(actor, policy.ActionStartKyc, policy.Subject{}); err != nil {
		return entities.KycCase{}, err
	}
	if levelRequested < minKycLevel || levelRequested > maxKycLevel {
		return entities.KycCase{}, ErrInvalidKycLevel
	}

	now := time.Now().UTC()
	k := entities.KycCase{
		ID:             uuid.NewString(),
		UserID:         actor.UserID,
		LevelRequested: levelRequested,
		Status:         entities.KycStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	var created entities.KycCase
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		created, err = repos.KycCases.Create(ctx, k)
		return err
	})
	if err != nil {
		return entities.KycCase{}, err
	}
	log.Printf("[kyc][usecase] case opened case_id=%s user_id=%s level=%d", created.ID, created.UserID, created.LevelRequested)
	return created, nil
}

func (u *KycUseCase) List(ctx context.Context, actor entities.Principal, status entities.KycStatus) ([]entities.KycCase, error) {
	if err := u.gate.Authorize(actor, policy.ActionReviewKyc, policy.Subject{}); err != nil {
		return nil, err
	}
	if status == "" {
		status = entities.KycStatusPending
	}
	var out []entities.KycCase
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		out, err = repos.KycCases.ListByStatus(ctx, status)
		return err
	})
	return out, err
}

// Approve marks the case approved and raises the user's stored level to
// max(current, requested) in the same persistence transaction.
func (u *KycUseCase) Approve(ctx context.Context, actor entities.Principal, caseID string) (entities.KycCase, entities.UserTrust, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.KycCase{}, entities.UserTrust{}, ErrInvalidKycCaseID
	}
	if err := u.gate.Authorize(actor, policy.ActionReviewKyc, policy.Subject{}); err != nil {
		return entities.KycCase{}, entities.UserTrust{}, err
	}

	var approved entities.KycCase
	var trust entities.UserTrust
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		k, err := loadKycCase(ctx, repos, caseID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := k.Approve(actor.UserID, now); err != nil {
			return err
		}
		if approved, err = repos.KycCases.Update(ctx, k); err != nil {
			return err
		}
		trust, err = repos.UserTrust.Get(ctx, k.UserID)
		if err != nil {
			return err
		}
		if trust.UserID == "" {
			trust = entities.UserTrust{UserID: k.UserID}
		}
		if trust.Raise(k.LevelRequested, now) {
			trust, err = repos.UserTrust.Upsert(ctx, trust)
		}
		return err
	})
	if err != nil {
		log.Printf("[kyc][usecase] approve failed case_id=%s err=%v", caseID, err)
		return entities.KycCase{}, entities.UserTrust{}, err
	}
	log.Printf("[kyc][usecase] approved case_id=%s user_id=%s kyc_level=%d", approved.ID, approved.UserID, trust.KycLevel)

	u.invalidate(ctx, approved.UserID)
	notify(ctx, u.notifier, interfaces.TemplateKycReviewed, map[string]any{
		"caseId":   approved.ID,
		"status":   string(approved.Status),
		"kycLevel": trust.KycLevel,
	}, approved.UserID)
	return approved, trust, nil
}

func (u *KycUseCase) Reject(ctx context.Context, actor entities.Principal, caseID string, r entities.KycRejection) (entities.KycCase, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.KycCase{}, ErrInvalidKycCaseID
	}
	r.ReasonCode = strings.TrimSpace(r.ReasonCode)
	if r.ReasonCode == "" {
		return entities.KycCase{}, ErrInvalidReasonCode
	}
	if err := u.gate.Authorize(actor, policy.ActionReviewKyc, policy.Subject{}); err != nil {
		return entities.KycCase{}, err
	}

	var rejected entities.KycCase
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		k, err := loadKycCase(ctx, repos, caseID)
		if err != nil {
			return err
		}
		if err := k.Reject(actor.UserID, r, time.Now().UTC()); err != nil {
			return err
		}
		rejected, err = repos.KycCases.Update(ctx, k)
		return err
	})
	if err != nil {
		log.Printf("[kyc][usecase] reject failed case_id=%s err=%v", caseID, err)
		return entities.KycCase{}, err
	}
	log.Printf("[kyc][usecase] rejected case_id=%s user_id=%s reason_code=%s", rejected.ID, rejected.UserID, rejected.ReasonCode)

	notify(ctx, u.notifier, interfaces.TemplateKycReviewed, map[string]any{
		"caseId":     rejected.ID,
		"status":     string(rejected.Status),
		"reasonCode": rejected.ReasonCode,
	}, rejected.UserID)
	return rejected, nil
}

// EffectiveKycLevel returns max(claimed, stored level). Lookup failures fall back
// to the claimed level.
func (u *KycUseCase) EffectiveKycLevel(ctx context.Context, userID string, claimed int) int {
	if userID == "" {
		return claimed
	}
	if u.cache != nil {
		level, found, err := u.cache.Get(ctx, userID)
		if err != nil {
			log.Printf("[kyc][usecase] trust cache get failed user_id=%s err=%v", userID, err)
		} else if found {
			return max(claimed, level)
		}
	}

	var trust entities.UserTrust
	err := u.uow.WithinTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) error {
		var err error
		trust, err = repos.UserTrust.Get(ctx, userID)
		return err
	})
	if err != nil {
		log.Printf("[kyc][usecase] trust lookup failed user_id=%s err=%v", userID, err)
		return claimed
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, userID, trust.KycLevel, u.cacheTTL); err != nil {
			log.Printf("[kyc][usecase] trust cache set failed user_id=%s err=%v", userID, err)
		}
	}
	return max(claimed, trust.KycLevel)
}

func (u *KycUseCase) invalidate(ctx context.Context, userID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("[kyc][usecase] trust cache invalidate failed user_id=%s err=%v", userID, err)
	}
}

func loadKycCase(ctx context.Context, repos interfaces.Repositories, id string) (entities.KycCase, error) {
	k, err := repos.KycCases.GetByID(ctx, id)
	if err != nil {
		return entities.KycCase{}, err
	}
	if k.ID == "" {
		return entities.KycCase{}, ErrKycCaseNotFound
	}
	return k, nil
}
