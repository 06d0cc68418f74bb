package date

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025/07/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	// 23:30 in New York is already the next day in UTC.
	ny := time.FixedZone("EST", -5*3600)
	in := time.Date(2024, time.March, 4, 23, 30, 0, 0, ny)
	if got, want := Of(in), New(2024, time.March, 5); got != want {
		t.Errorf("Of(%v) = %v, want %v", in, got, want)
	}
}

func TestAdd(t *testing.T) {
	d := New(2024, time.March, 1)
	if got, want := d.Add(-1), New(2024, time.February, 29); got != want {
		t.Errorf("Add(-1) = %v, want %v", got, want)
	}
	if got, want := d.Add(-365), New(2023, time.March, 2); got != want {
		t.Errorf("Add(-365) = %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2024, 1, 31), New(2024, 2, 1)
	if !a.Before(b) || a.After(b) || a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) inconsistent", a, b)
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, 1, 2)
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(out) != `"2024-01-02"` {
		t.Errorf("Marshal() = %s, want %q", out, "2024-01-02")
	}
	var got Date
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}
}

func TestIterate(t *testing.T) {
	h1 := new(History[float64]).Append(New(2024, 1, 1), 1).Append(New(2024, 1, 3), 3)
	h2 := new(History[float64]).Append(New(2024, 1, 2), 2).Append(New(2024, 1, 3), 3)
	empty := new(History[float64])

	got := slices.Collect(Iterate(h1, empty, h2))
	want := []Date{New(2024, 1, 1), New(2024, 1, 2), New(2024, 1, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v, want %v", got, want)
	}

	if got := slices.Collect(Iterate[float64]()); len(got) != 0 {
		t.Errorf("Iterate() with no history = %v, want empty", got)
	}
}

func TestRange(t *testing.T) {
	r := Range{From: New(2024, 1, 1), To: New(2024, 1, 10)}
	if !r.Contains(r.From) || !r.Contains(r.To) || r.Contains(New(2024, 1, 11)) {
		t.Errorf("Contains() boundaries are wrong for %v", r)
	}
	if got := r.Days(); got != 10 {
		t.Errorf("Days() = %v, want 10", got)
	}
	if got, want := LastYear(New(2025, 6, 15)).From, New(2024, 6, 15); got != want {
		t.Errorf("LastYear().From = %v, want %v", got, want)
	}
}
