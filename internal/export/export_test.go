package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type stubCatalog struct {
	byID map[int]domain.Artwork
	err  error
	got  []int
}

func (s *stubCatalog) GetArtworks(context.Context, int, int) (*domain.Page, error) {
	return nil, errors.New("not used")
}

func (s *stubCatalog) GetArtworksByIDs(_ context.Context, ids []int) ([]domain.Artwork, error) {
	s.got = ids
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Artwork
	for _, id := range ids {
		if a, ok := s.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func newStub() *stubCatalog {
	return &stubCatalog{byID: map[int]domain.Artwork{
		27992: {ID: 27992, Title: "A Sunday on La Grande Jatte — 1884", ArtistDisplay: "Georges Seurat", PlaceOfOrigin: "France", DateStart: 1884, DateEnd: 1886},
		28560: {ID: 28560, Title: "The Bedroom", ArtistDisplay: "Vincent van Gogh", PlaceOfOrigin: "France", DateStart: 1889, DateEnd: 1889},
	}}
}

func newTestExporter(c domain.CatalogClient) *Exporter {
	e := NewExporter(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.now = func() time.Time { return time.Unix(1700000000, 0) }
	return e
}

func TestExport_YAML(t *testing.T) {
	stub := newStub()
	dir := t.TempDir()

	path, err := newTestExporter(stub).Export(context.Background(), []int{27992, 28560}, adapter.ExportFormatYAML, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gallery-selection-1700000000.yaml"), path)
	assert.Equal(t, []int{27992, 28560}, stub.got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Count)
	require.Len(t, doc.Artworks, 2)
	assert.Equal(t, "Georges Seurat", doc.Artworks[0].ArtistDisplay)
	assert.Equal(t, 1889, doc.Artworks[1].DateStart)
}

func TestExport_Parquet(t *testing.T) {
	dir := t.TempDir()

	path, err := newTestExporter(newStub()).Export(context.Background(), []int{28560}, adapter.ExportFormatParquet, dir)
	require.NoError(t, err)
	assert.Equal(t, ".parquet", filepath.Ext(path))

	rows, err := parquet.ReadFile[domain.Artwork](path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "The Bedroom", rows[0].Title)
	assert.Equal(t, 28560, rows[0].ID)
}

func TestExport_NothingSelected(t *testing.T) {
	_, err := newTestExporter(newStub()).Export(context.Background(), nil, adapter.ExportFormatYAML, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNothingSelected)
}

func TestExport_FetchError(t *testing.T) {
	stub := newStub()
	stub.err = domain.ErrFetchFailed

	_, err := newTestExporter(stub).Export(context.Background(), []int{1}, adapter.ExportFormatYAML, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := newTestExporter(newStub()).Export(context.Background(), []int{28560}, adapter.ExportFormat("csv"), t.TempDir())
	assert.Error(t, err)
}

func TestExport_SameSecondKeepsEarlierFile(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(newStub())

	first, err := e.Export(context.Background(), []int{27992}, adapter.ExportFormatYAML, dir)
	require.NoError(t, err)
	second, err := e.Export(context.Background(), []int{28560}, adapter.ExportFormatYAML, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "gallery-selection-1700000000.yaml"), first)
	assert.Equal(t, filepath.Join(dir, "gallery-selection-1700000000-1.yaml"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Georges Seurat")
	assert.NotContains(t, string(data), "Vincent van Gogh")
}

func TestExport_UnknownFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()
	stub := newStub()

	_, err := newTestExporter(stub).Export(context.Background(), []int{28560}, adapter.ExportFormat("csv"), dir)
	require.Error(t, err)
	assert.Nil(t, stub.got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
