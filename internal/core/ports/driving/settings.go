package driving

import "github.com/custodia-labs/textstat/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, falling back to
	// defaults for anything not configured.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a single dotted key (e.g. "analysis.keywords")
	// and persists it.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
