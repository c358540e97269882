package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyWordsPerMinute = "analysis.words_per_minute"
	keyCommonWords    = "analysis.common_words"
	keyKeywords       = "analysis.keywords"
	keyStem           = "analysis.stem"
	keyOutputFormat   = "output.format"
	keyWatchInterval  = "watch.min_interval_ms"
)

// settingKeys lists the recognised keys in display order.
var settingKeys = []string{
	keyWordsPerMinute,
	keyCommonWords,
	keyKeywords,
	keyStem,
	keyOutputFormat,
	keyWatchInterval,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Missing or invalid stored
// values fall back to the defaults. A stored zero is kept for the counts
// and the watch interval: zero results and no throttling respectively.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Analysis: domain.AnalysisSettings{
			WordsPerMinute: s.getPositiveInt(keyWordsPerMinute, defaults.Analysis.WordsPerMinute),
			CommonWords:    s.getNonNegativeInt(keyCommonWords, defaults.Analysis.CommonWords),
			Keywords:       s.getNonNegativeInt(keyKeywords, defaults.Analysis.Keywords),
			Stem:           s.getBool(keyStem, defaults.Analysis.Stem),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		Watch: domain.WatchSettings{
			MinInterval: time.Duration(s.getNonNegativeInt(keyWatchInterval, int(defaults.Watch.MinInterval/time.Millisecond))) * time.Millisecond,
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidSetting
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyWordsPerMinute, settings.Analysis.WordsPerMinute},
		{keyCommonWords, settings.Analysis.CommonWords},
		{keyKeywords, settings.Analysis.Keywords},
		{keyStem, settings.Analysis.Stem},
		{keyOutputFormat, settings.Output.Format.String()},
		{keyWatchInterval, int(settings.Watch.MinInterval / time.Millisecond)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses value for a single key and persists the resulting settings.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyWordsPerMinute:
		settings.Analysis.WordsPerMinute, err = parseInt(key, value)
	case keyCommonWords:
		settings.Analysis.CommonWords, err = parseInt(key, value)
	case keyKeywords:
		settings.Analysis.Keywords, err = parseInt(key, value)
	case keyStem:
		settings.Analysis.Stem, err = strconv.ParseBool(value)
		if err != nil {
			err = fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
	case keyOutputFormat:
		settings.Output.Format = domain.OutputFormat(strings.ToLower(value))
	case keyWatchInterval:
		var ms int
		ms, err = parseInt(key, value)
		settings.Watch.MinInterval = time.Duration(ms) * time.Millisecond
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
	if err != nil {
		return err
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %s=%s", err, key, value)
	}
	return s.Save(settings)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSetting, key)
	}
	return n, nil
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	raw, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	val, ok := toInt(raw)
	if !ok || val < 0 {
		return defaultVal
	}
	return val
}

// toInt accepts the integer types config stores decode numbers into.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
