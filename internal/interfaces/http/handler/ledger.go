package handler

import (
	ledgerapp "github.com/attarerp/backend/internal/application/ledger"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerHandler handles ledger transaction and reconciliation endpoints
type LedgerHandler struct {
	BaseHandler
	posting        *ledgerapp.PostingService
	reconciliation *ledgerapp.ReconciliationService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(posting *ledgerapp.PostingService, reconciliation *ledgerapp.ReconciliationService) *LedgerHandler {
	return &LedgerHandler{
		posting:        posting,
		reconciliation: reconciliation,
	}
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/parties/:id/transactions", h.PartyTransactions)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/payments", h.PostPayment)
		ledger.POST("/reconcile", h.Reconcile)
		ledger.GET("/orphans", h.ListOrphans)
		ledger.DELETE("/orphans", h.PurgeOrphans)
	}
}

// PartyTransactions lists a party's ledger transactions
func (h *LedgerHandler) PartyTransactions(c *gin.Context) {
	partyID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.posting.PartyTransactions(c.Request.Context(), partyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// PostPaymentRequest records a settlement against a posted order
type PostPaymentRequest struct {
	PartyID uuid.UUID           `json:"party_id" binding:"required"`
	OrderID uuid.UUID           `json:"order_id" binding:"required"`
	Amount  decimal.Decimal     `json:"amount"`
	Method  party.PaymentMethod `json:"method"`
}

// PostPayment records a payment against an order and moves the party balance
func (h *LedgerHandler) PostPayment(c *gin.Context) {
	var req PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.posting.PostPayment(c.Request.Context(), req.PartyID, req.OrderID, req.Amount, req.Method)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ReconcileRequest selects the reconciliation scope. Without a party ID
// the whole ledger is reconciled.
type ReconcileRequest struct {
	PartyID *uuid.UUID `json:"party_id,omitempty"`
}

// Reconcile recomputes party balances from their posted transactions
func (h *LedgerHandler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	if req.PartyID != nil {
		result, err := h.reconciliation.ReconcileParty(c.Request.Context(), *req.PartyID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, result)
		return
	}

	report, err := h.reconciliation.ReconcileAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// ListOrphans lists transactions with no order reference
func (h *LedgerHandler) ListOrphans(c *gin.Context) {
	orphans, err := h.reconciliation.ListOrphans(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ledgerapp.TransactionResponse, len(orphans))
	for i := range orphans {
		responses[i] = ledgerapp.ToTransactionView(&orphans[i])
	}
	h.Success(c, responses)
}

// PurgeOrphans deletes orphaned transactions. Requires confirm=true.
func (h *LedgerHandler) PurgeOrphans(c *gin.Context) {
	confirm := c.Query("confirm") == "true"

	removed, err := h.reconciliation.PurgeOrphans(c.Request.Context(), confirm)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"removed": removed})
}
