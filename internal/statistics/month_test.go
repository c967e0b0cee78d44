package statistics

import (
	"errors"
	"testing"
	"time"
)

func TestResolveMonth(t *testing.T) {
	cases := []struct {
		token string
		start time.Time
		end   time.Time
	}{
		{"2024.01", date(2024, 1, 1), date(2024, 2, 1)},
		{"2024.06", date(2024, 6, 1), date(2024, 7, 1)},
		{"2024.12", date(2024, 12, 1), date(2025, 1, 1)},
		{"1999.11", date(1999, 11, 1), date(1999, 12, 1)},
	}
	for _, tc := range cases {
		start, end, err := ResolveMonth(tc.token)
		if err != nil {
			t.Fatalf("ResolveMonth(%q) error = %v", tc.token, err)
		}
		if !start.Equal(tc.start) {
			t.Fatalf("ResolveMonth(%q) start = %v, want %v", tc.token, start, tc.start)
		}
		if !end.Equal(tc.end) {
			t.Fatalf("ResolveMonth(%q) end = %v, want %v", tc.token, end, tc.end)
		}
	}
}

func TestResolveMonthLeapFebruary(t *testing.T) {
	start, end, err := ResolveMonth("2024.02")
	if err != nil {
		t.Fatalf("ResolveMonth error = %v", err)
	}
	if got := end.Sub(start); got != 29*24*time.Hour {
		t.Fatalf("2024 February interval width = %v, want 29 days", got)
	}

	start, end, err = ResolveMonth("2023.02")
	if err != nil {
		t.Fatalf("ResolveMonth error = %v", err)
	}
	if got := end.Sub(start); got != 28*24*time.Hour {
		t.Fatalf("2023 February interval width = %v, want 28 days", got)
	}
}

func TestResolveMonthMalformed(t *testing.T) {
	for _, token := range []string{"2024.13", "2024.00", "24.01", "2024-01", "2024.1", "2024.012", "", "abcd.ef"} {
		_, _, err := ResolveMonth(token)
		if !errors.Is(err, ErrMalformedMonth) {
			t.Fatalf("ResolveMonth(%q) error = %v, want ErrMalformedMonth", token, err)
		}
	}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
