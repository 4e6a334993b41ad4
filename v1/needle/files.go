package needle

import (
	"context"
	"net/http"
)

// FilesClient calls the /api/v1/files endpoints.
type FilesClient struct {
	session  *session
	endpoint string
}

func newFilesClient(s *session) *FilesClient {
	return &FilesClient{
		session:  s,
		endpoint: endpoint(s.cfg.URL, "files"),
	}
}

// GetDownloadURL returns a URL the file can be downloaded from. For files
// that were uploaded manually the URL expires shortly, so read it right
// away; the client does not track expiry.
//
// An empty fileID fails with a 422 *Error without contacting the server.
func (c *FilesClient) GetDownloadURL(ctx context.Context, fileID string) (string, error) {
	if fileID == "" {
		return "", validationError("file_id is required")
	}

	var out string
	err := c.session.do(ctx, call{
		op:       "files.download_url",
		method:   http.MethodGet,
		url:      c.endpoint + "/" + resourcePath(fileID) + "/download_url",
		resource: fileID,
	}, &out)
	if err != nil {
		return "", err
	}
	return out, nil
}
