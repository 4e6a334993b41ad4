package needle

// Collection is a named group of files that are searched together.
// Timestamps are passed through as sent by the server (ISO-8601).
type Collection struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	EmbeddingModel      string `json:"embedding_model"`
	EmbeddingDimensions string `json:"embedding_dimensions"`
	SearchQueries       string `json:"search_queries"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// FileToAdd describes a file to register in a collection. URL must be
// reachable by the Needle service, which downloads and indexes it.
type FileToAdd struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FileType is the MIME type of an indexed file.
type FileType string

// FileTypePDF is the only type the API currently accepts. Other values are
// kept as-is when the server reports them.
const FileTypePDF FileType = "application/pdf"

// CollectionFileStatus is the server-side indexing state of a file.
type CollectionFileStatus string

const (
	StatusPending CollectionFileStatus = "pending"
	StatusIndexed CollectionFileStatus = "indexed"
	StatusError   CollectionFileStatus = "error"
)

// CollectionFile is a file registered in a collection. A file can belong to
// several collections.
type CollectionFile struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Type        FileType             `json:"type"`
	URL         string               `json:"url"`
	UserID      string               `json:"user_id"`
	ConnectorID string               `json:"connector_id"`
	Size        int64                `json:"size"`
	MD5Hash     string               `json:"md5_hash"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
	Status      CollectionFileStatus `json:"status"`
}

// Indexed reports whether the file is searchable.
func (f CollectionFile) Indexed() bool {
	return f.Status == StatusIndexed
}

// CollectionDataStats aggregates files of one status.
type CollectionDataStats struct {
	Status *string `json:"status"`
	Files  int64   `json:"files"`
	Bytes  int64   `json:"bytes"`
}

// CollectionStats is the aggregate rollup of a collection.
type CollectionStats struct {
	DataStats   []CollectionDataStats `json:"data_stats"`
	ChunksCount int64                 `json:"chunks_count"`
	Characters  int64                 `json:"characters"`
	Users       int64                 `json:"users"`
}

// SearchResult is one matching chunk, in the order ranked by the server.
type SearchResult struct {
	Content string `json:"content"`
	FileID  string `json:"file_id"`
}

// SearchParams are the inputs of CollectionsClient.Search. Nil MaxDistance
// and TopK are left out of the request so the server defaults apply.
type SearchParams struct {
	CollectionID string

	// Text is the query.
	Text string

	// MaxDistance drops matches farther than this; smaller means more similar.
	MaxDistance *float64

	// TopK caps the number of results.
	TopK *int
}

type createCollectionRequest struct {
	Name    string   `json:"name"`
	FileIDs []string `json:"file_ids"`
}

type searchRequest struct {
	Text        string   `json:"text"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
}

type addFilesRequest struct {
	Files []FileToAdd `json:"files"`
}
