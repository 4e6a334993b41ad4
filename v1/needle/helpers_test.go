package needle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	writeJSON(t, w, http.StatusOK, map[string]any{"result": result})
}

func writeError(t *testing.T, w http.ResponseWriter, status int, message string, data any) {
	t.Helper()
	writeJSON(t, w, status, map[string]any{
		"error": map[string]any{"code": status, "message": message, "data": data},
	})
}

// newTestClient points both the base and the search URL at one server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: testAPIKey, URL: srv.URL, SearchURL: srv.URL})
	require.NoError(t, err)
	return client
}

// countingRoundTripper records requests without touching the network.
type countingRoundTripper struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return nil, fmt.Errorf("unexpected request to %s", req.URL)
}

func (c *countingRoundTripper) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeAPI keeps collections and files in memory and serves them the way
// the Needle API does.
type fakeAPI struct {
	t *testing.T

	mu          sync.Mutex
	seq         int
	collections []Collection
	files       map[string][]CollectionFile
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{t: t, files: map[string][]CollectionFile{}}
}

func (f *fakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s_%03d", prefix, f.seq)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string   `json:"name"`
			FileIDs []string `json:"file_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(f.t, w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		f.mu.Lock()
		c := Collection{
			ID:                  f.nextID("clt"),
			Name:                req.Name,
			EmbeddingModel:      "basilikum-minor",
			EmbeddingDimensions: "1024",
			SearchQueries:       "0",
			CreatedAt:           "2024-06-01T10:00:00Z",
			UpdatedAt:           "2024-06-01T10:00:00Z",
		}
		f.collections = append(f.collections, c)
		f.mu.Unlock()

		writeResult(f.t, w, c)
	})

	mux.HandleFunc("GET /api/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		out := append([]Collection{}, f.collections...)
		f.mu.Unlock()
		writeResult(f.t, w, out)
	})

	mux.HandleFunc("GET /api/v1/collections/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		f.mu.Lock()
		defer f.mu.Unlock()
		for _, c := range f.collections {
			if c.ID == id {
				writeResult(f.t, w, c)
				return
			}
		}
		writeError(f.t, w, http.StatusNotFound, "collection not found", map[string]any{"collection_id": id})
	})

	mux.HandleFunc("POST /api/v1/collections/{id}/files", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Files []FileToAdd `json:"files"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(f.t, w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		id := r.PathValue("id")
		f.mu.Lock()
		added := make([]CollectionFile, 0, len(req.Files))
		for _, file := range req.Files {
			added = append(added, CollectionFile{
				ID:     f.nextID("fle"),
				Name:   file.Name,
				Type:   FileTypePDF,
				URL:    file.URL,
				UserID: "usr_001",
				Status: StatusPending,
			})
		}
		f.files[id] = append(f.files[id], added...)
		f.mu.Unlock()

		writeResult(f.t, w, added)
	})

	mux.HandleFunc("GET /api/v1/collections/{id}/files", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		out := append([]CollectionFile{}, f.files[r.PathValue("id")]...)
		f.mu.Unlock()
		writeResult(f.t, w, out)
	})

	return mux
}

// markIndexed simulates the server finishing indexing of a collection.
func (f *fakeAPI) markIndexed(collectionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.files[collectionID] {
		f.files[collectionID][i].Status = StatusIndexed
	}
}
