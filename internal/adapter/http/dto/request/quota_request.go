package request

import (
	"fmt"
	"strings"

	"cartas_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateQuotaRequest struct {
	Administrator     string          `json:"administrator" binding:"required"`
	GroupNumber       string          `json:"groupNumber" binding:"required"`
	QuotaNumber       string          `json:"quotaNumber" binding:"required"`
	CreditValue       decimal.Decimal `json:"creditValue"`
	AssetType         string          `json:"assetType"`
	InstallmentsPaid  int             `json:"installmentsPaid"`
	InstallmentsTotal int             `json:"installmentsTotal"`
}

func (r CreateQuotaRequest) ToInput() usecase.CreateQuotaInput {
	return usecase.CreateQuotaInput{
		Administrator:     strings.TrimSpace(r.Administrator),
		GroupNumber:       strings.TrimSpace(r.GroupNumber),
		QuotaNumber:       strings.TrimSpace(r.QuotaNumber),
		CreditValue:       r.CreditValue,
		AssetType:         strings.TrimSpace(r.AssetType),
		InstallmentsPaid:  r.InstallmentsPaid,
		InstallmentsTotal: r.InstallmentsTotal,
	}
}

// SearchQuotasQuery is bound from the query string of GET /quotas.
type SearchQuotasQuery struct {
	AssetType           string `form:"assetType"`
	MinCreditValue      string `form:"minCreditValue"`
	MaxCreditValue      string `form:"maxCreditValue"`
	MinInstallmentsPaid *int   `form:"minInstallmentsPaid"`
	Limit               int    `form:"limit"`
	Offset              int    `form:"offset"`
}

func (q SearchQuotasQuery) ToInput() (usecase.SearchQuotasInput, error) {
	minCredit, err := optionalDecimal("minCreditValue", q.MinCreditValue)
	if err != nil {
		return usecase.SearchQuotasInput{}, err
	}
	maxCredit, err := optionalDecimal("maxCreditValue", q.MaxCreditValue)
	if err != nil {
		return usecase.SearchQuotasInput{}, err
	}
	return usecase.SearchQuotasInput{
		AssetType:           strings.TrimSpace(q.AssetType),
		MinCreditValue:      minCredit,
		MaxCreditValue:      maxCredit,
		MinInstallmentsPaid: q.MinInstallmentsPaid,
		Limit:               q.Limit,
		Offset:              q.Offset,
	}, nil
}

func optionalDecimal(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &d, nil
}
