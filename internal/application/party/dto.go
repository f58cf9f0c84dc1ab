package party

import (
	"time"

	"github.com/attarerp/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest creates a customer or supplier
type CreatePartyRequest struct {
	Name    string     `json:"name"`
	Kind    party.Kind `json:"kind"`
	Phone   string     `json:"phone,omitempty"`
	Email   string     `json:"email,omitempty"`
	Address string     `json:"address,omitempty"`
	GSTIN   string     `json:"gstin,omitempty"`
}

// UpdatePartyRequest updates a party's contact fields. Kind and balance
// are not updatable through the API.
type UpdatePartyRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// PartyResponse is the API view of a party. Balance is read-only; it
// moves through ledger postings and reconciliation.
type PartyResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Kind      party.Kind      `json:"kind"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Address   string          `json:"address,omitempty"`
	GSTIN     string          `json:"gstin,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToPartyResponse converts a domain party to its API view
func ToPartyResponse(p *party.Party) PartyResponse {
	return PartyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		GSTIN:     p.GSTIN,
		Balance:   p.Balance.Round(2),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
