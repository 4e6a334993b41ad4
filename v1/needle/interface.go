package needle

import "context"

// Collections manages collections and searches them.
// *CollectionsClient is the implementation returned by NewClient.
type Collections interface {
	Create(ctx context.Context, name string, fileIDs []string) (*Collection, error)
	Get(ctx context.Context, collectionID string) (*Collection, error)
	List(ctx context.Context) ([]Collection, error)
	Search(ctx context.Context, params SearchParams) ([]SearchResult, error)
	GetStats(ctx context.Context, collectionID string) (*CollectionStats, error)
}

// CollectionFiles manages the files of a collection.
type CollectionFiles interface {
	Add(ctx context.Context, collectionID string, files []FileToAdd) ([]CollectionFile, error)
	List(ctx context.Context, collectionID string) ([]CollectionFile, error)
}

// Files gives access to individual files.
type Files interface {
	GetDownloadURL(ctx context.Context, fileID string) (string, error)
}

var (
	_ Collections     = (*CollectionsClient)(nil)
	_ CollectionFiles = (*CollectionFilesClient)(nil)
	_ Files           = (*FilesClient)(nil)
)
