package service

import (
	"context"
	"strconv"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/pkg/cache"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// SettingStore is the slice of the setting repository this service needs
type SettingStore interface {
	GetMulti(keys []string) (map[string]string, error)
	Set(key, value string) error
}

// SettingsService serves the score thresholds and main-page order. Reads are
// cached briefly in Redis because every listing request needs the thresholds;
// lookups that fail fall back to the defaults so page rendering never breaks
// on a settings problem.
type SettingsService interface {
	Thresholds(ctx context.Context) domain.ScoreThresholds
	AutoDeleteScore(ctx context.Context) int
	MainPageOrder(ctx context.Context) string
	Settings(ctx context.Context) (*domain.SettingsResponse, error)
	Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error)
}

type settingsService struct {
	repo  SettingStore
	cache *cache.Service
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo SettingStore, cacheService *cache.Service) SettingsService {
	return &settingsService{repo: repo, cache: cacheService}
}

const settingsCacheKey = cache.PrefixSettings + "all"

func defaultSettings() *domain.SettingsResponse {
	return &domain.SettingsResponse{
		TopScoreThreshold: domain.DefaultTopScoreThreshold,
		ArchiveScore:      domain.DefaultArchiveScore,
		AutoDeleteScore:   domain.DefaultAutoDeleteScore,
		MainPageOrder:     domain.MainPageOrderRecent,
	}
}

// load reads the full settings document, cache first, store second.
// Missing keys keep their defaults.
func (s *settingsService) load(ctx context.Context) (*domain.SettingsResponse, error) {
	var cached domain.SettingsResponse
	if err := s.cache.Get(ctx, settingsCacheKey, &cached); err == nil {
		return &cached, nil
	}

	values, err := s.repo.GetMulti([]string{
		domain.SettingTopScore,
		domain.SettingArchiveScore,
		domain.SettingAutoDelete,
		domain.SettingMainPageOrder,
	})
	if err != nil {
		return nil, err
	}

	settings := defaultSettings()
	if v, ok := values[domain.SettingTopScore]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			settings.TopScoreThreshold = n
		}
	}
	if v, ok := values[domain.SettingArchiveScore]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			settings.ArchiveScore = n
		}
	}
	if v, ok := values[domain.SettingAutoDelete]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			settings.AutoDeleteScore = n
		}
	}
	if v, ok := values[domain.SettingMainPageOrder]; ok && (v == domain.MainPageOrderRecent || v == domain.MainPageOrderTop) {
		settings.MainPageOrder = v
	}

	if err := s.cache.Set(ctx, settingsCacheKey, settings, cache.TTLSettings); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to cache settings")
	}
	return settings, nil
}

// Thresholds returns the top/archive thresholds, falling back to defaults
// when the store is unreachable.
func (s *settingsService) Thresholds(ctx context.Context) domain.ScoreThresholds {
	settings, err := s.load(ctx)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to load settings, using defaults")
		settings = defaultSettings()
	}
	return domain.ScoreThresholds{
		TopScoreThreshold: settings.TopScoreThreshold,
		ArchiveScore:      settings.ArchiveScore,
	}
}

func (s *settingsService) AutoDeleteScore(ctx context.Context) int {
	settings, err := s.load(ctx)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to load settings, using defaults")
		return domain.DefaultAutoDeleteScore
	}
	return settings.AutoDeleteScore
}

func (s *settingsService) MainPageOrder(ctx context.Context) string {
	settings, err := s.load(ctx)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to load settings, using defaults")
		return domain.MainPageOrderRecent
	}
	return settings.MainPageOrder
}

func (s *settingsService) Settings(ctx context.Context) (*domain.SettingsResponse, error) {
	return s.load(ctx)
}

// Update applies the non-nil fields and invalidates the cache
func (s *settingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	if req.MainPageOrder != nil &&
		*req.MainPageOrder != domain.MainPageOrderRecent && *req.MainPageOrder != domain.MainPageOrderTop {
		return nil, common.ErrInvalidInput
	}
	// thresholds must be non-negative; the auto-delete score may be any int
	if req.TopScoreThreshold != nil && *req.TopScoreThreshold < 0 {
		return nil, common.ErrInvalidInput
	}
	if req.ArchiveScore != nil && *req.ArchiveScore < 0 {
		return nil, common.ErrInvalidInput
	}

	updates := map[string]*int{
		domain.SettingTopScore:     req.TopScoreThreshold,
		domain.SettingArchiveScore: req.ArchiveScore,
		domain.SettingAutoDelete:   req.AutoDeleteScore,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := s.repo.Set(key, strconv.Itoa(*value)); err != nil {
			return nil, err
		}
	}
	if req.MainPageOrder != nil {
		if err := s.repo.Set(domain.SettingMainPageOrder, *req.MainPageOrder); err != nil {
			return nil, err
		}
	}

	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to invalidate settings cache")
	}
	return s.load(ctx)
}
