package game

import (
	"testing"
	"time"
)

func TestRefillEnergy(t *testing.T) {
	cases := []struct {
		name         string
		energy, max  int
		elapsed      time.Duration
		perMinute    int
		wantEnergy   int
		wantConsumed time.Duration
	}{
		{"under a minute", 5, 100, 59 * time.Second, 1, 5, 0},
		{"one minute", 5, 100, time.Minute, 1, 6, time.Minute},
		{"fraction kept", 5, 100, 90 * time.Second, 1, 6, time.Minute},
		{"hits the cap", 99, 100, 10 * time.Minute, 1, 100, 10 * time.Minute},
		{"already full", 100, 100, time.Hour, 1, 100, 0},
		{"disabled", 5, 100, time.Hour, 0, 5, 0},
	}

	for _, tc := range cases {
		energy, consumed := RefillEnergy(tc.energy, tc.max, tc.elapsed, tc.perMinute)
		if energy != tc.wantEnergy || consumed != tc.wantConsumed {
			t.Fatalf("%s: RefillEnergy = (%d, %s); want (%d, %s)",
				tc.name, energy, consumed, tc.wantEnergy, tc.wantConsumed)
		}
		if energy < 0 || energy > tc.max {
			t.Fatalf("%s: energy %d out of [0,%d]", tc.name, energy, tc.max)
		}
	}
}
