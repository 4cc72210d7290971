package loader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultHTTPTimeout bounds a single remote asset fetch. The asset pipeline
// implements no retries, so a hung transfer would otherwise stall a
// background slot forever.
const defaultHTTPTimeout = 60 * time.Second

// Source provides model bytes by path along with the total size when known,
// so callers can report fractional progress while reading.
type Source interface {
	// Open opens the asset at the given path for reading.
	//
	// Parameters:
	//   - path: the file path or URL of the asset
	//
	// Returns:
	//   - io.ReadCloser: the asset byte stream
	//   - int64: total size in bytes, or 0 when unknown
	//   - error: error if the asset cannot be opened
	Open(path string) (io.ReadCloser, int64, error)
}

// fileSource reads assets from the local filesystem.
type fileSource struct{}

// httpSource fetches assets over HTTP(S).
type httpSource struct {
	client *http.Client
}

var _ Source = fileSource{}
var _ Source = &httpSource{}

// NewFileSource creates a Source reading from the local filesystem.
//
// Returns:
//   - Source: the file-backed source
func NewFileSource() Source {
	return fileSource{}
}

// NewHTTPSource creates a Source fetching assets over HTTP(S) with a bounded
// per-request timeout.
//
// Returns:
//   - Source: the HTTP-backed source
func NewHTTPSource() Source {
	return &httpSource{
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// ResolveSource picks the Source matching a path: http(s) URLs fetch over the
// network, everything else reads from disk.
//
// Parameters:
//   - path: the file path or URL of the asset
//
// Returns:
//   - Source: the matching source
func ResolveSource(path string) Source {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return NewHTTPSource()
	}
	return NewFileSource()
}

func (fileSource) Open(path string) (io.ReadCloser, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("source: failed to open %q: %w", path, err)
	}

	var total int64
	if info, err := f.Stat(); err == nil {
		total = info.Size()
	}
	return f, total, nil
}

func (s *httpSource) Open(path string) (io.ReadCloser, int64, error) {
	resp, err := s.client.Get(path)
	if err != nil {
		return nil, 0, fmt.Errorf("source: failed to fetch %q: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("source: fetching %q returned HTTP %d", path, resp.StatusCode)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	return resp.Body, total, nil
}
