package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromTransactionView(t *testing.T) {
	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:        "tx-1",
		QuotaID:   "q-1",
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Status:    entities.TransactionStatusEscrowLocked,
		StartedAt: now,
		UpdatedAt: now,
	}

	res := FromTransactionView(usecase.TransactionView{Transaction: tx})
	if res.Status != "escrow_bloqueado" || res.CurrentStep != res.Status {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.EscrowTotals != nil {
		t.Fatalf("expected no escrow totals")
	}

	res = FromTransactionView(usecase.TransactionView{
		Transaction: tx,
		Escrow:      &usecase.EscrowTotals{EscrowID: "e-1", AmountMinorUnits: 1000, FeeMinorUnits: 20, Status: entities.EscrowStatusAuthorized},
	})
	if res.EscrowTotals == nil || res.EscrowTotals.EscrowID != "e-1" || res.EscrowTotals.Status != "authorized" {
		t.Fatalf("unexpected escrow totals: %+v", res.EscrowTotals)
	}
}

func TestFromQuotaSerializesDecimalsAsStrings(t *testing.T) {
	sale := decimal.RequireFromString("210000.00")
	res := FromQuota(entities.Quota{ID: "q-1", CreditValue: decimal.RequireFromString("200000"), Status: entities.QuotaStatusSold, SaleValue: &sale})
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"creditValue":"200000"`) || !strings.Contains(body, `"saleValue":"210000"`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestFromContract(t *testing.T) {
	signed := time.Now().UTC()
	res := FromContract(entities.Contract{ID: "c-1", TransactionID: "tx-1", Status: entities.ContractStatusSigned, DocumentURL: "https://docs/c.pdf", EvidenceHash: "h", SignedAt: &signed})
	if res.Status != "assinado" || res.URL != "https://docs/c.pdf" || res.SignedAt == nil {
		t.Fatalf("unexpected contract response %+v", res)
	}
}

func TestFromWebhookResultAlwaysReceived(t *testing.T) {
	res := FromWebhookResult(usecase.WebhookResult{EventID: "mock:ev-1", Outcome: entities.WebhookOutcomeUnmatched})
	if !res.Received || res.Outcome != "unmatched" {
		t.Fatalf("unexpected ack %+v", res)
	}
}
