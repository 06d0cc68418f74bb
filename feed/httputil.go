package feed

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache is an http.RoundTripper that keeps successful responses on disk.
//
// Entries are keyed by the time window they were fetched in, so they all expire
// together at the end of the window.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	window time.Duration
	now    func() time.Time
}

// NewDiskCache returns a client caching successful GET responses in dir for the
// current window of time. An empty dir means os.TempDir().
func NewDiskCache(dir string, window time.Duration) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: dir, window: window, now: time.Now}}
}

func (c *diskCache) key(req *http.Request) string {
	start := c.now().UTC().Truncate(c.window).Format(time.RFC3339)
	key := fmt.Sprintf("%s %s %s", start, req.Method, req.URL.String())
	return fmt.Sprintf("sharpeful-%x", sha1.Sum([]byte(key)))
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := c.key(req)
	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get reads a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response on disk. The response body stays readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// jwget performs an HTTP GET and decodes the JSON body into data. It returns the
// response status code, and the raw body when the status is not 200 so that
// the caller can report the provider's error.
func jwget(ctx context.Context, client *http.Client, addr string, data any) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, body, nil
	}
	return resp.StatusCode, body, json.Unmarshal(body, data)
}
