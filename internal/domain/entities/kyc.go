package entities

import (
	"fmt"
	"time"
)

type KycStatus string

const (
	KycStatusPending  KycStatus = "pending"
	KycStatusApproved KycStatus = "approved"
	KycStatusRejected KycStatus = "rejected"
)

// KycCase is a user's request for a higher trust level, reviewed by an admin.
type KycCase struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	LevelRequested int       `json:"level_requested"`
	Status         KycStatus `json:"status"`

	ReasonCode    string     `json:"reason_code,omitempty"`
	ReasonMessage string     `json:"reason_message,omitempty"`
	Severity      string     `json:"severity,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	Blocks        []string   `json:"blocks,omitempty"`

	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// KycRejection carries the reviewer's explanation for a rejected case.
type KycRejection struct {
	ReasonCode    string
	ReasonMessage string
	Severity      string
	DueAt         *time.Time
	Blocks        []string
}

func (k *KycCase) Approve(reviewerID string, now time.Time) error {
	if k.Status != KycStatusPending {
		return fmt.Errorf("%w: kyc case %s is %s", ErrInvalidTransition, k.ID, k.Status)
	}
	k.Status = KycStatusApproved
	k.ReviewedBy = &reviewerID
	k.ReviewedAt = &now
	k.UpdatedAt = now
	return nil
}

func (k *KycCase) Reject(reviewerID string, r KycRejection, now time.Time) error {
	if k.Status != KycStatusPending {
		return fmt.Errorf("%w: kyc case %s is %s", ErrInvalidTransition, k.ID, k.Status)
	}
	k.Status = KycStatusRejected
	k.ReasonCode = r.ReasonCode
	k.ReasonMessage = r.ReasonMessage
	k.Severity = r.Severity
	k.DueAt = r.DueAt
	k.Blocks = r.Blocks
	k.ReviewedBy = &reviewerID
	k.ReviewedAt = &now
	k.UpdatedAt = now
	return nil
}

// UserTrust is the stored trust level of a user. It only ever increases.
type UserTrust struct {
	UserID    string    `json:"user_id"`
	KycLevel  int       `json:"kyc_level"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *UserTrust) Raise(level int, now time.Time) bool {
	if level <= u.KycLevel {
		return false
	}
	u.KycLevel = level
	u.UpdatedAt = now
	return true
}
