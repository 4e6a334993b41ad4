package needle

import (
	"context"
	"net/http"
)

// CollectionFilesClient calls the /api/v1/collections/{id}/files endpoints.
type CollectionFilesClient struct {
	session  *session
	endpoint string
}

func newCollectionFilesClient(s *session) *CollectionFilesClient {
	return &CollectionFilesClient{
		session:  s,
		endpoint: endpoint(s.cfg.URL, "collections"),
	}
}

// Add registers files in a collection. Indexing runs asynchronously on the
// server: the returned files are usually still StatusPending. Poll List or
// CollectionsClient.GetStats to follow progress.
func (c *CollectionFilesClient) Add(ctx context.Context, collectionID string, files []FileToAdd) ([]CollectionFile, error) {
	if files == nil {
		files = []FileToAdd{}
	}

	var out []CollectionFile
	err := c.session.do(ctx, call{
		op:       "collection_files.add",
		method:   http.MethodPost,
		url:      c.filesURL(collectionID),
		resource: collectionID,
		body:     addFilesRequest{Files: files},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the files of a collection with their current status.
func (c *CollectionFilesClient) List(ctx context.Context, collectionID string) ([]CollectionFile, error) {
	var out []CollectionFile
	err := c.session.do(ctx, call{
		op:       "collection_files.list",
		method:   http.MethodGet,
		url:      c.filesURL(collectionID),
		resource: collectionID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CollectionFilesClient) filesURL(collectionID string) string {
	return c.endpoint + "/" + resourcePath(collectionID) + "/files"
}
