package party

import (
	"context"

	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates party CRUD. Parties with ledger history cannot be
// deleted: losing their transactions would silently corrupt balances.
type Service struct {
	parties      party.PartyRepository
	transactions party.TransactionRepository
	log          *zap.Logger
}

// NewService creates a new party Service
func NewService(parties party.PartyRepository, transactions party.TransactionRepository, log *zap.Logger) *Service {
	return &Service{parties: parties, transactions: transactions, log: log}
}

// Create creates a customer or supplier with a zero opening balance
func (s *Service) Create(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	p, err := party.NewParty(req.Name, req.Kind)
	if err != nil {
		return nil, err
	}
	p.Phone = req.Phone
	p.Email = req.Email
	p.Address = req.Address
	p.GSTIN = req.GSTIN

	if err := s.parties.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("created party",
		zap.String("party_id", p.ID.String()),
		zap.String("kind", string(p.Kind)),
	)

	resp := ToPartyResponse(p)
	return &resp, nil
}

// Get returns one party
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	p, err := s.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPartyResponse(p)
	return &resp, nil
}

// List returns parties, optionally filtered by kind
func (s *Service) List(ctx context.Context, kind party.Kind, filter shared.Filter) ([]PartyResponse, int64, error) {
	var (
		parties []party.Party
		total   int64
		err     error
	)
	if kind != "" {
		if !kind.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_KIND", "Party kind must be customer or supplier")
		}
		parties, total, err = s.parties.FindByKind(ctx, kind, filter)
	} else {
		parties, total, err = s.parties.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, 0, err
	}

	out := make([]PartyResponse, 0, len(parties))
	for i := range parties {
		out = append(out, ToPartyResponse(&parties[i]))
	}
	return out, total, nil
}

// Update updates a party's contact fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePartyRequest) (*PartyResponse, error) {
	p, err := s.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.Phone, req.Email, req.Address, req.GSTIN); err != nil {
		return nil, err
	}
	if err := s.parties.Save(ctx, p); err != nil {
		return nil, err
	}

	resp := ToPartyResponse(p)
	return &resp, nil
}

// Delete removes a party. Refused when any ledger transaction references
// the party.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.parties.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.transactions.CountByParty(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrPartyHasLedger
	}

	return s.parties.Delete(ctx, id)
}
