package storage

import (
	"context"
	"io"
)

// ImageStore uploads product and request images and returns a public URL
// for each stored object.
type ImageStore interface {
	// Upload stores the image under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
