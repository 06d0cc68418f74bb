package feed

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDiskCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintf(w, "hello %s", r.URL.Query().Get("name"))
	}))
	defer srv.Close()

	now := time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC)
	client := &http.Client{Transport: &diskCache{
		base:   http.DefaultTransport,
		dir:    t.TempDir(),
		window: time.Hour,
		now:    func() time.Time { return now },
	}}
	get := func(path string) string {
		t.Helper()
		resp, err := client.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", path, err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	for i := 0; i < 2; i++ {
		if got := get("/?name=x"); got != "hello x" {
			t.Errorf("Get() = %q, want %q", got, "hello x")
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 within the window", hits)
	}

	now = now.Add(time.Hour)
	get("/?name=x")
	if hits != 2 {
		t.Errorf("server hits = %d, want 2 after the window", hits)
	}

	get("/fail")
	get("/fail")
	if hits != 4 {
		t.Errorf("server hits = %d, want failures not cached", hits)
	}
}
