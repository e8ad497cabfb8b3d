package artic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mmcdole/gallery/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalog is a configurable stand-in for the /artworks endpoint
type mockCatalog struct {
	server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	lastPath string
	queries  []map[string]string
	ua       string
}

func newMockCatalog(t *testing.T) *mockCatalog {
	t.Helper()
	m := &mockCatalog{status: http.StatusOK}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.lastPath = r.URL.Path
		m.ua = r.Header.Get("User-Agent")
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		m.queries = append(m.queries, q)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(m.status)
		_, _ = io.WriteString(w, m.body)
	}))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockCatalog) respond(status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
	m.body = body
}

func (m *mockCatalog) lastQuery() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries[len(m.queries)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pageBody builds a response with n sequential records starting at firstID
func pageBody(firstID, n, total int) string {
	records := make([]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, fmt.Sprintf(
			`{"id":%d,"title":"Work %d","place_of_origin":"France","artist_display":"Artist","inscriptions":null,"date_start":1880,"date_end":null}`,
			firstID+i, firstID+i))
	}
	return fmt.Sprintf(`{"pagination":{"total":%d,"limit":%d,"offset":0,"total_pages":%d,"current_page":1},"data":[%s],"info":{"version":"1.13"}}`,
		total, n, (total+n-1)/max(n, 1), strings.Join(records, ","))
}

func TestClient_GetArtworks(t *testing.T) {
	mock := newMockCatalog(t)
	mock.respond(http.StatusOK, pageBody(1, 12, 100))

	c := NewClient(mock.server.URL+"/", testLogger(), WithUserAgent("gallery/test"))
	page, err := c.GetArtworks(context.Background(), 1, 12)
	require.NoError(t, err)

	assert.Len(t, page.Artworks, 12)
	assert.Equal(t, 100, page.Total)
	assert.Equal(t, 1, page.Artworks[0].ID)
	assert.Equal(t, "Work 1", page.Artworks[0].Title)
	assert.Equal(t, "", page.Artworks[0].Inscriptions)
	assert.Equal(t, 1880, page.Artworks[0].DateStart)
	assert.Equal(t, 0, page.Artworks[0].DateEnd)

	assert.Equal(t, "/artworks", mock.lastPath)
	assert.Equal(t, "gallery/test", mock.ua)
	q := mock.lastQuery()
	assert.Equal(t, "1", q["page"])
	assert.Equal(t, "12", q["limit"])
	assert.Equal(t, "id,title,place_of_origin,artist_display,inscriptions,date_start,date_end", q["fields"])
}

func TestClient_GetArtworks_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantErr: domain.ErrUnexpectedStatus},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: domain.ErrUnexpectedStatus},
		{name: "malformed json", status: http.StatusOK, body: `{"data": [`, wantErr: domain.ErrMalformedResponse},
		{name: "missing data", status: http.StatusOK, body: `{"pagination":{"total":3}}`, wantErr: domain.ErrMalformedResponse},
		{name: "null data", status: http.StatusOK, body: `{"pagination":{"total":3},"data":null}`, wantErr: domain.ErrMalformedResponse},
		{name: "missing pagination", status: http.StatusOK, body: `{"data":[]}`, wantErr: domain.ErrMalformedResponse},
		{name: "missing total", status: http.StatusOK, body: `{"pagination":{"limit":12},"data":[]}`, wantErr: domain.ErrMalformedResponse},
		{name: "record without id", status: http.StatusOK, body: `{"pagination":{"total":1},"data":[{"title":"x"}]}`, wantErr: domain.ErrMalformedResponse},
		{name: "wrong type", status: http.StatusOK, body: `{"pagination":{"total":"many"},"data":[]}`, wantErr: domain.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockCatalog(t)
			mock.respond(tt.status, tt.body)

			c := NewClient(mock.server.URL, testLogger())
			page, err := c.GetArtworks(context.Background(), 1, 12)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetArtworks_NetworkError(t *testing.T) {
	mock := newMockCatalog(t)
	url := mock.server.URL
	mock.server.Close()

	before := testutil.ToFloat64(catalogErrorsTotal.WithLabelValues(errorClassNetwork))

	c := NewClient(url, testLogger())
	_, err := c.GetArtworks(context.Background(), 1, 12)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)

	after := testutil.ToFloat64(catalogErrorsTotal.WithLabelValues(errorClassNetwork))
	assert.Equal(t, before+1, after)
}

func TestClient_GetArtworks_InvalidPageSize(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", testLogger())

	for _, limit := range []int{0, -1, domain.MaxPageSize + 1} {
		_, err := c.GetArtworks(context.Background(), 1, limit)
		assert.ErrorIs(t, err, domain.ErrInvalidPageSize, "limit=%d", limit)
	}
}

func TestClient_GetArtworks_CountsRequests(t *testing.T) {
	mock := newMockCatalog(t)
	mock.respond(http.StatusOK, pageBody(1, 2, 2))

	counter := catalogRequestsTotal.WithLabelValues(endpointArtworks, "200")
	before := testutil.ToFloat64(counter)

	c := NewClient(mock.server.URL, testLogger())
	_, err := c.GetArtworks(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestClient_GetArtworksByIDs_Chunks(t *testing.T) {
	mock := newMockCatalog(t)
	mock.respond(http.StatusOK, `{"data":[{"id":7,"title":"Seven"}]}`)

	ids := make([]int, 150)
	for i := range ids {
		ids[i] = i + 1
	}

	c := NewClient(mock.server.URL, testLogger())
	artworks, err := c.GetArtworksByIDs(context.Background(), ids)
	require.NoError(t, err)

	// Two chunks, one record each from the mock
	assert.Len(t, artworks, 2)
	require.Len(t, mock.queries, 2)
	assert.Len(t, strings.Split(mock.queries[0]["ids"], ","), 100)
	assert.Len(t, strings.Split(mock.queries[1]["ids"], ","), 50)
	assert.Equal(t, "50", mock.queries[1]["limit"])
}

func TestClient_GetArtworksByIDs_MissingData(t *testing.T) {
	mock := newMockCatalog(t)
	mock.respond(http.StatusOK, `{}`)

	c := NewClient(mock.server.URL, testLogger())
	_, err := c.GetArtworksByIDs(context.Background(), []int{1})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestClient_GetArtworksByIDs_Empty(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", testLogger())
	artworks, err := c.GetArtworksByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, artworks)
}
