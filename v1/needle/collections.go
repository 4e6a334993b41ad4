package needle

import (
	"context"
	"net/http"
)

// CollectionsClient calls the /api/v1/collections endpoints. Search goes to
// the search host, everything else to the base URL.
type CollectionsClient struct {
	// Files manages the files inside collections.
	Files *CollectionFilesClient

	session        *session
	endpoint       string
	searchEndpoint string
}

func newCollectionsClient(s *session) *CollectionsClient {
	return &CollectionsClient{
		Files:          newCollectionFilesClient(s),
		session:        s,
		endpoint:       endpoint(s.cfg.URL, "collections"),
		searchEndpoint: endpoint(s.cfg.SearchURL, "collections"),
	}
}

// Create creates a collection named name, optionally seeded with already
// uploaded files.
func (c *CollectionsClient) Create(ctx context.Context, name string, fileIDs []string) (*Collection, error) {
	var out Collection
	err := c.session.do(ctx, call{
		op:     "collections.create",
		method: http.MethodPost,
		url:    c.endpoint,
		body:   createCollectionRequest{Name: name, FileIDs: fileIDs},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one collection.
func (c *CollectionsClient) Get(ctx context.Context, collectionID string) (*Collection, error) {
	var out Collection
	err := c.session.do(ctx, call{
		op:       "collections.get",
		method:   http.MethodGet,
		url:      c.endpoint + "/" + resourcePath(collectionID),
		resource: collectionID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all collections of the caller in server order.
func (c *CollectionsClient) List(ctx context.Context) ([]Collection, error) {
	var out []Collection
	err := c.session.do(ctx, call{
		op:     "collections.list",
		method: http.MethodGet,
		url:    c.endpoint,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Search runs a semantic search over the indexed files of a collection.
// Results keep the server's ranking.
//
//	results, err := client.Collections.Search(ctx, needle.SearchParams{
//	    CollectionID: "clt_01",
//	    Text:         "what is the refund policy?",
//	    TopK:         needle.Ptr(5),
//	})
func (c *CollectionsClient) Search(ctx context.Context, params SearchParams) ([]SearchResult, error) {
	var out []SearchResult
	err := c.session.do(ctx, call{
		op:       "collections.search",
		method:   http.MethodPost,
		url:      c.searchEndpoint + "/" + resourcePath(params.CollectionID) + "/search",
		resource: params.CollectionID,
		body: searchRequest{
			Text:        params.Text,
			MaxDistance: params.MaxDistance,
			TopK:        params.TopK,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetStats returns the file, chunk and character counts of a collection.
func (c *CollectionsClient) GetStats(ctx context.Context, collectionID string) (*CollectionStats, error) {
	var out CollectionStats
	err := c.session.do(ctx, call{
		op:       "collections.stats",
		method:   http.MethodGet,
		url:      c.endpoint + "/" + resourcePath(collectionID) + "/stats",
		resource: collectionID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
