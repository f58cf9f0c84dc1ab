package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	settingsapp "github.com/attarerp/backend/internal/application/settings"
	"github.com/attarerp/backend/internal/domain/settings"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSettingRepository implements settings.SettingRepository for testing
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*settings.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindAll(ctx context.Context) ([]settings.Setting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]settings.Setting), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, setting *settings.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func TestSettingsHandler_Get_NotFound(t *testing.T) {
	repo := new(MockSettingRepository)
	h := NewSettingsHandler(settingsapp.NewService(repo))

	repo.On("FindByKey", mock.Anything, settings.KeyGSTRate).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/settings/:key", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/settings/gst.rate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsHandler_Set_ThenGetFromCache(t *testing.T) {
	repo := new(MockSettingRepository)
	h := NewSettingsHandler(settingsapp.NewService(repo))

	repo.On("FindByKey", mock.Anything, settings.KeyGSTRate).Return(nil, shared.ErrNotFound).Once()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*settings.Setting")).Return(nil)

	stored, err := settings.NewSetting(settings.KeyGSTRate, "12")
	require.NoError(t, err)
	repo.On("FindByKey", mock.Anything, settings.KeyGSTRate).Return(stored, nil).Once()

	router := setupTestRouter()
	router.PUT("/settings/:key", h.Set)
	router.GET("/settings/:key", h.Get)

	body, _ := json.Marshal(SetSettingRequest{Value: "12"})
	req := httptest.NewRequest(http.MethodPut, "/settings/gst.rate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/settings/gst.rate", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "12", data["value"])
	repo.AssertExpectations(t)
}

func TestSettingsHandler_Set_MissingValue(t *testing.T) {
	repo := new(MockSettingRepository)
	h := NewSettingsHandler(settingsapp.NewService(repo))

	router := setupTestRouter()
	router.PUT("/settings/:key", h.Set)

	req := httptest.NewRequest(http.MethodPut, "/settings/gst.rate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSettingsHandler_List(t *testing.T) {
	repo := new(MockSettingRepository)
	h := NewSettingsHandler(settingsapp.NewService(repo))

	gst, err := settings.NewSetting(settings.KeyGSTRate, "18")
	require.NoError(t, err)
	label, err := settings.NewSetting(settings.KeySchemeLabel, "Scheme")
	require.NoError(t, err)
	repo.On("FindAll", mock.Anything).Return([]settings.Setting{*gst, *label}, nil)

	router := setupTestRouter()
	router.GET("/settings", h.List)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}
