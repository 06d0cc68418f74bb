package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
)

func ms(day string) int64 {
	return date.MustParse(day).Time().Add(15 * time.Hour).UnixMilli()
}

func newMassiveServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/massive/history", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("symbol") {
		case "X":
			if q.Get("start") != "2024-01-01" || q.Get("end") != "2024-01-05" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"Missing symbol, start, or end."}`)
				return
			}
			fmt.Fprintf(w, `{"ticker":"X","results":[{"c":101,"t":%d},{"c":100,"t":%d},{"c":99,"t":0}]}`, ms("2024-01-02"), ms("2024-01-01"))
		case "EMPTY":
			fmt.Fprint(w, `{"ticker":"EMPTY"}`)
		case "LIMITED":
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"status":"ERROR","message":"exceeded the maximum requests per minute"}`)
		case "NOKEY":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":"Missing MASSIVE_API_KEY."}`)
		default:
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `<html>bad gateway</html>`)
		}
	})
	mux.HandleFunc("/api/massive/latest", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbols") != "A,B,C" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"Missing symbols."}`)
			return
		}
		fmt.Fprintf(w, `{"results":[
			{"symbol":"A","data":{"ticker":"A","results":[{"c":1,"t":%d},{"c":2,"t":%d}]}},
			{"symbol":"B","error":{"message":"unknown ticker"}},
			{"symbol":"C","data":{"ticker":"C"}}
		]}`, ms("2024-01-01"), ms("2024-01-02"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMassiveHistory(t *testing.T) {
	srv := newMassiveServer(t)
	m := NewMassive(srv.URL+"/", nil, nil)
	r := date.Range{From: date.MustParse("2024-01-01"), To: date.MustParse("2024-01-05")}

	got, err := m.History(context.Background(), "X", r)
	if err != nil {
		t.Fatalf("History(X) error = %v", err)
	}
	want := []sharpeful.PricePoint{
		{Date: date.MustParse("2024-01-01"), Close: 100},
		{Date: date.MustParse("2024-01-02"), Close: 101},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("History(X) = %v, want %v", got, want)
	}

	got, err = m.History(context.Background(), "EMPTY", r)
	if err != nil || len(got) != 0 {
		t.Errorf("History(EMPTY) = %v, %v, want an empty series", got, err)
	}
}

func TestMassiveErrors(t *testing.T) {
	srv := newMassiveServer(t)
	m := NewMassive(srv.URL, nil, nil)
	r := date.Range{From: date.MustParse("2024-01-01"), To: date.MustParse("2024-01-05")}

	testCases := []struct {
		symbol  string
		status  int
		message string
	}{
		{"LIMITED", http.StatusTooManyRequests, "exceeded the maximum requests per minute"},
		{"NOKEY", http.StatusInternalServerError, "Missing MASSIVE_API_KEY."},
		{"DOWN", http.StatusBadGateway, "Massive API request failed."},
	}
	for _, tc := range testCases {
		t.Run(tc.symbol, func(t *testing.T) {
			_, err := m.History(context.Background(), tc.symbol, r)
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("History(%s) error = %v, want ErrUnavailable", tc.symbol, err)
			}
			var ferr *Error
			if !errors.As(err, &ferr) {
				t.Fatalf("History(%s) error is not a *Error", tc.symbol)
			}
			if ferr.Status != tc.status || ferr.Message != tc.message || ferr.Symbol != tc.symbol {
				t.Errorf("History(%s) error = %+v, want status %d and %q", tc.symbol, ferr, tc.status, tc.message)
			}
		})
	}
}

func TestMassiveUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	m := NewMassive(srv.URL, nil, nil)
	if _, err := m.Latest(context.Background(), []string{"A"}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Latest() error = %v, want ErrUnavailable", err)
	}
}

func TestMassiveLatest(t *testing.T) {
	srv := newMassiveServer(t)
	m := NewMassive(srv.URL, nil, nil)

	got, err := m.Latest(context.Background(), []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if want := map[string]float64{"A": 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Latest() = %v, want %v", got, want)
	}

	got, err = m.Latest(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Latest(nil) = %v, %v, want an empty map", got, err)
	}
}

func TestMassiveCancelled(t *testing.T) {
	srv := newMassiveServer(t)
	m := NewMassive(srv.URL, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Latest(ctx, []string{"A", "B", "C"}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Latest() with a cancelled context error = %v, want ErrUnavailable", err)
	}
}
