package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/adapter/source/artic"
	"github.com/mmcdole/gallery/internal/domain"
)

// SourceConfig contains the configuration needed to create a CatalogClient
type SourceConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new CatalogClient for the configured catalog URL.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.CatalogClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("catalog URL is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported catalog URL scheme: %q", u.Scheme)
	}

	return artic.NewClient(cfg.URL, logger,
		artic.WithTimeout(cfg.Timeout),
		artic.WithUserAgent(cfg.UserAgent),
	), nil
}

// NewClientFromConfig creates a CatalogClient from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogClient, error) {
	return NewClient(&SourceConfig{
		URL:       cfg.Catalog.URL,
		UserAgent: cfg.Catalog.UserAgent,
		Timeout:   cfg.Catalog.Timeout,
	}, logger)
}
