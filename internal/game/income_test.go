package game

import (
	"testing"
	"time"
)

func TestShouldAccrue(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    bool
	}{
		{0, false},
		{30 * time.Second, false},
		{59 * time.Second, false},
		{time.Minute, true},
		{10 * time.Minute, true},
	}

	for _, tc := range cases {
		if got := ShouldAccrue(tc.elapsed); got != tc.want {
			t.Fatalf("ShouldAccrue(%s) = %v; want %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestAccrued(t *testing.T) {
	cases := []struct {
		name    string
		perHour string
		elapsed time.Duration
		want    string
	}{
		{"60/hour for 10 min", "60", 10 * time.Minute, "10.00"},
		{"60/hour for 1 hour", "60", time.Hour, "60.00"},
		{"fractional rate", "90", 10 * time.Minute, "15.00"},
		{"rounds to cents", "1", 10 * time.Minute, "0.17"},
		{"zero elapsed", "60", 0, "0"},
	}

	for _, tc := range cases {
		got := Accrued(d(tc.perHour), tc.elapsed)
		if !got.Equal(d(tc.want)) {
			t.Fatalf("%s: Accrued = %s; want %s", tc.name, got, tc.want)
		}
	}
}
