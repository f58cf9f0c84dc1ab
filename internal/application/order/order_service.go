package order

import (
	"context"
	"time"

	"github.com/attarerp/backend/internal/application/ledger"
	appsettings "github.com/attarerp/backend/internal/application/settings"
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service orchestrates order lifecycle: creation with catalog price
// resolution, completion with ledger posting, and explicit total resync
// after item edits.
type Service struct {
	orders   order.OrderRepository
	parties  party.PartyRepository
	products catalog.ProductRepository
	sets     catalog.ProductSetRepository
	attars   catalog.AttarRepository
	settings *appsettings.Service
	posting  *ledger.PostingService
	log      *zap.Logger
}

// NewService creates a new order Service
func NewService(
	orders order.OrderRepository,
	parties party.PartyRepository,
	products catalog.ProductRepository,
	sets catalog.ProductSetRepository,
	attars catalog.AttarRepository,
	settings *appsettings.Service,
	posting *ledger.PostingService,
	log *zap.Logger,
) *Service {
	return &Service{
		orders:   orders,
		parties:  parties,
		products: products,
		sets:     sets,
		attars:   attars,
		settings: settings,
		posting:  posting,
		log:      log,
	}
}

// Create builds an order from the request, resolves item prices against
// the catalog, computes the GST-inclusive total at the configured rate
// and saves it. With req.Complete set, the order is completed and posted
// to the party ledger in the same call.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	p, err := s.parties.FindByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if err := checkPartyKind(p, req.Type); err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	ord, err := order.NewOrder(p.ID, req.Type, date)
	if err != nil {
		return nil, err
	}
	ord.Notes = req.Notes

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have at least one item")
	}
	for i := range req.Items {
		item, err := s.buildItem(ctx, req.Items[i])
		if err != nil {
			return nil, err
		}
		if err := ord.AddItem(*item); err != nil {
			return nil, err
		}
	}

	rate, err := s.settings.GSTRate(ctx)
	if err != nil {
		return nil, err
	}
	ord.RecalculateTotal(rate)

	if err := s.orders.Save(ctx, ord); err != nil {
		return nil, err
	}

	s.log.Info("created order",
		zap.String("order_id", ord.ID.String()),
		zap.String("party_id", p.ID.String()),
		zap.String("type", string(ord.Type)),
		zap.String("total", ord.TotalAmount.String()),
	)

	if req.Complete {
		return s.Complete(ctx, ord.ID)
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// Get returns one order with its items
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// List returns orders matching the filter
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, total, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(orders), total, nil
}

// ListByParty returns a party's orders
func (s *Service) ListByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, total, err := s.orders.FindByParty(ctx, partyID, filter)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(orders), total, nil
}

// UpdateItems replaces a pending order's items. The stored total is
// deliberately left untouched; callers run Resync to recompute it.
func (s *Service) UpdateItems(ctx context.Context, id uuid.UUID, req UpdateItemsRequest) (*OrderResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have at least one item")
	}
	items := make([]order.OrderItem, 0, len(req.Items))
	for i := range req.Items {
		item, err := s.buildItem(ctx, req.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := ord.ReplaceItems(items); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, ord); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(ord)
	return &resp, nil
}

// Complete transitions an order to completed and posts it to the party
// ledger: a sale debits the customer, a purchase credits the supplier.
// The status change is only persisted by the posting scope, together
// with the ledger transaction and the balance write, so a failed
// posting leaves the order pending.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ord.Complete(); err != nil {
		return nil, err
	}
	if _, err := s.posting.PostOrder(ctx, ord); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(ord)
	return &resp, nil
}

// Cancel cancels a pending order. Completed orders are terminal and
// cannot be cancelled, so no ledger reversal is ever needed here.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ord.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, ord); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(ord)
	return &resp, nil
}

// Delete removes a pending order. Completed orders are referenced by
// ledger transactions and must not be deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ord.Status != order.StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending orders can be deleted")
	}
	return s.orders.Delete(ctx, id)
}

// Resync recomputes the order total from its current items and, when it
// changed, re-saves the order and moves the party balance by exactly the
// delta through the posting transaction.
func (s *Service) Resync(ctx context.Context, id uuid.UUID) (*ResyncResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate, err := s.effectiveRate(ctx, ord)
	if err != nil {
		return nil, err
	}

	previous := ord.TotalAmount
	ord.RecalculateTotal(rate)

	resp := &ResyncResponse{
		OrderID:       ord.ID,
		PreviousTotal: previous,
		NewTotal:      ord.TotalAmount,
		Changed:       !previous.Equal(ord.TotalAmount),
	}
	if !resp.Changed {
		return resp, nil
	}

	if ord.Status == order.StatusCompleted {
		// the order save rides in the posting scope with the balance move
		if err := s.posting.AdjustOrderTotal(ctx, ord, ord.TotalAmount); err != nil {
			return nil, err
		}
	} else if err := s.orders.Save(ctx, ord); err != nil {
		return nil, err
	}

	s.log.Info("resynced order total",
		zap.String("order_id", ord.ID.String()),
		zap.String("previous", previous.String()),
		zap.String("new", ord.TotalAmount.String()),
	)
	return resp, nil
}

// Invoice returns the GST breakdown for an order, computed from its
// current items at the rate captured on the order.
func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate, err := s.effectiveRate(ctx, ord)
	if err != nil {
		return nil, err
	}

	breakdown := order.ComputeBreakdown(ord.Items, rate)
	resp := ToInvoiceResponse(ord, &breakdown, rate)
	return &resp, nil
}

// effectiveRate prefers the rate captured when the order's total was
// last computed; orders that never had one use the configured rate.
func (s *Service) effectiveRate(ctx context.Context, ord *order.Order) (decimal.Decimal, error) {
	if !ord.GSTRate.IsZero() {
		return ord.GSTRate, nil
	}
	return s.settings.GSTRate(ctx)
}

// buildItem resolves an item request against the catalog. The catalog
// price applies unless the request overrides it; the discount falls back
// to the configured default.
func (s *Service) buildItem(ctx context.Context, req ItemRequest) (*order.OrderItem, error) {
	ref, err := catalog.NewSellableRef(req.Kind, req.SellableID)
	if err != nil {
		return nil, err
	}

	name, catalogPrice, err := s.resolveSellable(ctx, ref)
	if err != nil {
		return nil, err
	}

	unitPrice := catalogPrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	var discount decimal.Decimal
	if req.DiscountPercent != nil {
		discount = *req.DiscountPercent
	} else {
		discount, err = s.settings.DiscountPercent(ctx)
		if err != nil {
			return nil, err
		}
	}

	item, err := order.NewOrderItem(ref, name, req.Quantity, unitPrice, discount)
	if err != nil {
		return nil, err
	}
	item.FreeQuantity = req.FreeQuantity
	item.Scheme = req.Scheme
	return item, nil
}

// resolveSellable fetches the referenced entity's display name and
// catalog price.
func (s *Service) resolveSellable(ctx context.Context, ref catalog.SellableRef) (string, decimal.Decimal, error) {
	switch ref.Kind {
	case catalog.SellableKindProduct:
		p, err := s.products.FindByID(ctx, ref.ID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return p.Name, p.UnitPrice, nil
	case catalog.SellableKindProductSet:
		set, err := s.sets.FindByID(ctx, ref.ID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return set.Name, set.UnitPrice, nil
	case catalog.SellableKindAttar:
		a, err := s.attars.FindByID(ctx, ref.ID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return a.Name, a.UnitPrice, nil
	default:
		return "", decimal.Zero, shared.NewDomainError("INVALID_SELLABLE", "Unknown sellable kind "+string(ref.Kind))
	}
}

// checkPartyKind enforces that sales go to customers and purchases to
// suppliers.
func checkPartyKind(p *party.Party, orderType order.Type) error {
	switch orderType {
	case order.TypeSale:
		if p.Kind != party.KindCustomer {
			return shared.NewDomainError("INVALID_PARTY_KIND", "Sale orders require a customer party")
		}
	case order.TypePurchase:
		if p.Kind != party.KindSupplier {
			return shared.NewDomainError("INVALID_PARTY_KIND", "Purchase orders require a supplier party")
		}
	default:
		return shared.NewDomainError("INVALID_ORDER_TYPE", "Unknown order type "+string(orderType))
	}
	return nil
}

func toResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out
}
