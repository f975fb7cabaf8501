package databricks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// UploadFile writes the contents of r to an absolute volume path such as
// /Volumes/<catalog>/<schema>/<volume>/<name>.
func (c *Client) UploadFile(ctx context.Context, path string, r io.Reader, overwrite bool) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("upload file: path %q is not absolute", path)
	}

	endpoint := c.host + "/api/2.0/fs/files" + (&url.URL{Path: path}).EscapedPath() +
		"?overwrite=" + strconv.FormatBool(overwrite)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	return nil
}
