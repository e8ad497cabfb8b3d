// Package export writes the selected artworks to a file.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Exporter fetches selected artworks by ID and writes them out
type Exporter struct {
	client domain.CatalogClient
	logger *slog.Logger
	now    func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(client domain.CatalogClient, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{client: client, logger: logger, now: time.Now}
}

const maxNameAttempts = 100

// document is the YAML layout of an export file
type document struct {
	ExportedAt time.Time        `yaml:"exported_at"`
	Count      int              `yaml:"count"`
	Artworks   []domain.Artwork `yaml:"artworks"`
}

// Export fetches ids and writes them to dir in the given format.
// It returns the path of the written file.
func (e *Exporter) Export(ctx context.Context, ids []int, format adapter.ExportFormat, dir string) (string, error) {
	if len(ids) == 0 {
		return "", domain.ErrNothingSelected
	}

	switch format {
	case adapter.ExportFormatYAML, adapter.ExportFormatParquet:
	default:
		return "", fmt.Errorf("unknown export format: %q", format)
	}

	artworks, err := e.client.GetArtworksByIDs(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("fetching selected artworks: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	now := e.now()
	f, path, err := createExportFile(dir, fmt.Sprintf("gallery-selection-%d", now.Unix()), string(format))
	if err != nil {
		return "", err
	}

	switch format {
	case adapter.ExportFormatYAML:
		err = writeYAML(f, document{ExportedAt: now.UTC(), Count: len(artworks), Artworks: artworks})
	case adapter.ExportFormatParquet:
		err = parquet.Write(f, artworks)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing %s export: %w", format, err)
	}

	e.logger.Info("exported selection", "path", path, "requested", len(ids), "written", len(artworks))
	return path, nil
}

// createExportFile creates base.ext in dir, or base-N.ext if that name is taken.
// Existing exports are never overwritten.
func createExportFile(dir, base, ext string) (*os.File, string, error) {
	for n := 0; n < maxNameAttempts; n++ {
		name := base + "." + ext
		if n > 0 {
			name = fmt.Sprintf("%s-%d.%s", base, n, ext)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create export file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("failed to create export file: %s.%s and %d alternatives exist", base, ext, maxNameAttempts-1)
}

func writeYAML(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
