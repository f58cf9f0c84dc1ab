package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	partyapp "github.com/attarerp/backend/internal/application/party"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPartyRepository implements party.PartyRepository for testing
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]party.Party, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]party.Party), args.Get(1).(int64), args.Error(2)
}

func (m *MockPartyRepository) FindByKind(ctx context.Context, kind party.Kind, filter shared.Filter) ([]party.Party, int64, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).([]party.Party), args.Get(1).(int64), args.Error(2)
}

func (m *MockPartyRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepository implements party.TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *party.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]party.Transaction, int64, error) {
	args := m.Called(ctx, partyID, filter)
	return args.Get(0).([]party.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) FindPostedByParty(ctx context.Context, partyID uuid.UUID) ([]party.Transaction, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).([]party.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]party.Transaction, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]party.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindOrphans(ctx context.Context) ([]party.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]party.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *party.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupPartyHandler(parties *MockPartyRepository, transactions *MockTransactionRepository) *PartyHandler {
	service := partyapp.NewService(parties, transactions, zap.NewNop())
	return NewPartyHandler(service)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPartyHandler_Create_Success(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	partyRepo.On("Save", mock.Anything, mock.AnythingOfType("*party.Party")).Return(nil)

	router := setupTestRouter()
	router.POST("/parties", h.Create)

	body, _ := json.Marshal(partyapp.CreatePartyRequest{
		Name: "Qadri Perfumers",
		Kind: party.KindCustomer,
	})
	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	partyRepo.AssertExpectations(t)
}

func TestPartyHandler_Create_InvalidKind(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	router := setupTestRouter()
	router.POST("/parties", h.Create)

	body, _ := json.Marshal(partyapp.CreatePartyRequest{
		Name: "Someone",
		Kind: party.Kind("vendor"),
	})
	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PARTY_KIND", resp.Error.Code)
	partyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPartyHandler_Get_NotFound(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	partyID := uuid.New()
	partyRepo.On("FindByID", mock.Anything, partyID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/parties/:id", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/parties/"+partyID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestPartyHandler_Delete_RefusedWithLedgerHistory(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	customer, err := party.NewParty("Qadri Perfumers", party.KindCustomer)
	require.NoError(t, err)

	partyRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	txRepo.On("CountByParty", mock.Anything, customer.ID).Return(int64(4), nil)

	router := setupTestRouter()
	router.DELETE("/parties/:id", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/parties/"+customer.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PARTY_HAS_LEDGER", resp.Error.Code)
	partyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPartyHandler_List_ByKind(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	customer, err := party.NewParty("Qadri Perfumers", party.KindCustomer)
	require.NoError(t, err)

	partyRepo.On("FindByKind", mock.Anything, party.KindCustomer, mock.AnythingOfType("shared.Filter")).
		Return([]party.Party{*customer}, int64(1), nil)

	router := setupTestRouter()
	router.GET("/parties", h.List)

	req := httptest.NewRequest(http.MethodGet, "/parties?kind=customer", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
}

func TestPartyHandler_InvalidID(t *testing.T) {
	partyRepo := new(MockPartyRepository)
	txRepo := new(MockTransactionRepository)
	h := setupPartyHandler(partyRepo, txRepo)

	router := setupTestRouter()
	router.GET("/parties/:id", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/parties/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
