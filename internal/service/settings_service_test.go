package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MockSettingStore is a mock implementation of SettingStore
type MockSettingStore struct {
	mock.Mock
}

func (m *MockSettingStore) GetMulti(keys []string) (map[string]string, error) {
	args := m.Called(keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func TestSettingsService_Thresholds_DefaultsForMissingKeys(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	store.On("GetMulti", mock.Anything).Return(map[string]string{}, nil)

	thresholds := svc.Thresholds(context.Background())

	assert.Equal(t, domain.DefaultTopScoreThreshold, thresholds.TopScoreThreshold)
	assert.Equal(t, domain.DefaultArchiveScore, thresholds.ArchiveScore)
}

func TestSettingsService_Thresholds_StoredValuesWin(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	store.On("GetMulti", mock.Anything).Return(map[string]string{
		domain.SettingTopScore:     "40",
		domain.SettingArchiveScore: "800",
	}, nil)

	thresholds := svc.Thresholds(context.Background())

	assert.Equal(t, 40, thresholds.TopScoreThreshold)
	assert.Equal(t, 800, thresholds.ArchiveScore)
}

func TestSettingsService_Thresholds_DefaultsOnStoreError(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	store.On("GetMulti", mock.Anything).Return(nil, assert.AnError)

	thresholds := svc.Thresholds(context.Background())

	assert.Equal(t, domain.DefaultTopScoreThreshold, thresholds.TopScoreThreshold)
}

func TestSettingsService_Load_IgnoresUnparseableValues(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	store.On("GetMulti", mock.Anything).Return(map[string]string{
		domain.SettingTopScore:      "not-a-number",
		domain.SettingMainPageOrder: "sideways",
	}, nil)

	settings, err := svc.Settings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultTopScoreThreshold, settings.TopScoreThreshold)
	assert.Equal(t, domain.MainPageOrderRecent, settings.MainPageOrder)
}

func TestSettingsService_Update_ValidatesInput(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	badOrder := "sideways"
	_, err := svc.Update(context.Background(), &domain.UpdateSettingsRequest{MainPageOrder: &badOrder})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	negative := -5
	_, err = svc.Update(context.Background(), &domain.UpdateSettingsRequest{TopScoreThreshold: &negative})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestSettingsService_Update_UpsertsOnlyProvidedFields(t *testing.T) {
	store := new(MockSettingStore)
	svc := NewSettingsService(store, nil)

	top := 30
	order := domain.MainPageOrderTop
	store.On("Set", domain.SettingTopScore, "30").Return(nil)
	store.On("Set", domain.SettingMainPageOrder, "top").Return(nil)
	store.On("GetMulti", mock.Anything).Return(map[string]string{
		domain.SettingTopScore:      "30",
		domain.SettingMainPageOrder: "top",
	}, nil)

	settings, err := svc.Update(context.Background(), &domain.UpdateSettingsRequest{
		TopScoreThreshold: &top,
		MainPageOrder:     &order,
	})

	assert.NoError(t, err)
	assert.Equal(t, 30, settings.TopScoreThreshold)
	assert.Equal(t, domain.MainPageOrderTop, settings.MainPageOrder)
	store.AssertNotCalled(t, "Set", domain.SettingArchiveScore, mock.Anything)
	store.AssertExpectations(t)
}
