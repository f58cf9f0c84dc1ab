package ledger

import (
	"context"

	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReconciliationService is the authoritative repair path for party
// balances. It recomputes each balance from scratch out of the
// order-referenced transaction log, corrects stale order totals, and
// reports orphan transactions. The pass is idempotent: running it twice
// with no intervening postings yields identical balances.
type ReconciliationService struct {
	scope          TransactionScope
	driftTolerance decimal.Decimal
	log            *zap.Logger
}

// NewReconciliationService creates a ReconciliationService. The drift
// tolerance bounds how far a stored order total may sit from a fresh
// recomputation before it is corrected; rounding noise stays below it.
func NewReconciliationService(scope TransactionScope, driftTolerance decimal.Decimal, log *zap.Logger) *ReconciliationService {
	if driftTolerance.IsNegative() {
		driftTolerance = decimal.NewFromInt(1)
	}
	return &ReconciliationService{
		scope:          scope,
		driftTolerance: driftTolerance,
		log:            log,
	}
}

// ReconcileAll recomputes every party's balance, one party per
// transaction scope so a failure for one party never aborts the rest.
func (s *ReconciliationService) ReconcileAll(ctx context.Context) (*ReconciliationReport, error) {
	var ids []uuid.UUID
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		var err error
		ids, err = repos.Parties().FindAllIDs(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{}
	for _, id := range ids {
		result, err := s.ReconcileParty(ctx, id)
		if err != nil {
			report.Failures = append(report.Failures, PartyFailure{PartyID: id, Error: err.Error()})
			s.log.Warn("party reconciliation failed",
				zap.String("party_id", id.String()),
				zap.Error(err),
			)
			continue
		}
		report.Results = append(report.Results, *result)
	}

	orphans, err := s.ListOrphans(ctx)
	if err != nil {
		return nil, err
	}
	report.OrphansSkipped = len(orphans)

	return report, nil
}

// ReconcileParty recomputes one party's balance from its
// order-referenced transactions, correcting stale order totals first.
// It runs as a single atomic pass with the party row locked, so it
// serializes against concurrent posting for the same party.
func (s *ReconciliationService) ReconcileParty(ctx context.Context, partyID uuid.UUID) (*PartyReconciliation, error) {
	var result PartyReconciliation
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		p, err := repos.Parties().FindByIDForUpdate(ctx, partyID)
		if err != nil {
			return err
		}

		staleOrders, err := s.correctStaleTotals(ctx, repos, p)
		if err != nil {
			return err
		}

		txs, err := repos.Transactions().FindPostedByParty(ctx, partyID)
		if err != nil {
			return err
		}

		recomputed := decimal.Zero
		for i := range txs {
			recomputed = recomputed.Add(txs[i].SignedEffect(p.Kind))
		}

		result = PartyReconciliation{
			PartyID:     p.ID,
			PartyName:   p.Name,
			Kind:        p.Kind,
			Previous:    p.Balance,
			Recomputed:  recomputed,
			Corrected:   !p.Balance.Equal(recomputed),
			StaleOrders: staleOrders,
		}

		if result.Corrected {
			p.SetBalance(recomputed)
			if err := repos.Parties().Save(ctx, p); err != nil {
				return err
			}
			s.log.Info("corrected party balance",
				zap.String("party_id", p.ID.String()),
				zap.String("previous", result.Previous.String()),
				zap.String("recomputed", recomputed.String()),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// correctStaleTotals recomputes each completed order's total from its
// current items and, where the stored total drifted beyond the
// tolerance, rewrites the total and its posting transaction. Returns the
// number of orders corrected.
func (s *ReconciliationService) correctStaleTotals(ctx context.Context, repos Repositories, p *party.Party) (int, error) {
	orders, err := repos.Orders().FindCompletedByParty(ctx, p.ID)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for i := range orders {
		ord := &orders[i]
		rate := ord.GSTRate
		if rate.IsZero() && len(ord.Items) > 0 {
			// orders predating rate capture fall back to the default
			rate = order.DefaultGSTRate
		}

		fresh := recomputeTotal(ord, rate)
		if fresh.Sub(ord.TotalAmount).Abs().LessThanOrEqual(s.driftTolerance) {
			continue
		}

		ord.TotalAmount = fresh
		if err := repos.Orders().Save(ctx, ord); err != nil {
			return corrected, err
		}

		posting, err := findPostingTransaction(ctx, repos, ord)
		if err != nil {
			return corrected, err
		}
		if posting != nil && !posting.Amount.Equal(fresh) {
			if err := posting.SetAmount(fresh); err != nil {
				return corrected, err
			}
			if err := repos.Transactions().Save(ctx, posting); err != nil {
				return corrected, err
			}
		}
		corrected++
	}
	return corrected, nil
}

// ListOrphans returns transactions with no order reference. They are a
// data-integrity defect: excluded from every balance computation and
// removable only through PurgeOrphans.
func (s *ReconciliationService) ListOrphans(ctx context.Context) ([]party.Transaction, error) {
	var orphans []party.Transaction
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		var err error
		orphans, err = repos.Transactions().FindOrphans(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return orphans, nil
}

// PurgeOrphans deletes all orphan transactions. Destructive and
// irreversible; refuses to run without explicit confirmation.
func (s *ReconciliationService) PurgeOrphans(ctx context.Context, confirm bool) (int64, error) {
	if !confirm {
		return 0, shared.NewDomainError("CONFIRMATION_REQUIRED", "Orphan purge is destructive and must be explicitly confirmed")
	}

	var deleted int64
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		var err error
		deleted, err = repos.Transactions().DeleteOrphans(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Warn("purged orphan transactions", zap.Int64("deleted", deleted))
	return deleted, nil
}
