package game

import "testing"

// ladder: 100 exp per level up to level 5, then capped
func testTable(level int) (int64, bool) {
	if level >= 5 {
		return 0, false
	}
	return 100, true
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		name       string
		level      int
		exp, delta int64
		wantLevel  int
		wantExp    int64
		wantGained int
	}{
		{"no level up", 1, 0, 50, 1, 50, 0},
		{"exact threshold", 1, 0, 100, 2, 0, 1},
		{"carry overflow", 1, 90, 15, 2, 5, 1},
		{"multi level", 1, 0, 250, 3, 50, 2},
		{"top of ladder keeps exp", 5, 0, 500, 5, 500, 0},
		{"negative delta ignored", 2, 40, -10, 2, 40, 0},
	}

	for _, tc := range cases {
		level, exp, gained := Advance(tc.level, tc.exp, tc.delta, testTable)
		if level != tc.wantLevel || exp != tc.wantExp || len(gained) != tc.wantGained {
			t.Fatalf("%s: Advance = (%d, %d, %d levels); want (%d, %d, %d levels)",
				tc.name, level, exp, len(gained), tc.wantLevel, tc.wantExp, tc.wantGained)
		}
	}
}

// No experience may be created or destroyed across a cascade.
func TestAdvanceConservation(t *testing.T) {
	for _, delta := range []int64{0, 1, 99, 100, 101, 250, 399, 1000} {
		level, exp, gained := Advance(1, 0, delta, testTable)
		consumed := int64(len(gained)) * 100
		if consumed+exp != delta {
			t.Fatalf("delta=%d: consumed %d + leftover %d != %d (level=%d)", delta, consumed, exp, delta, level)
		}
	}
}

func TestAdvanceGainedLevels(t *testing.T) {
	_, _, gained := Advance(1, 0, 250, testTable)
	want := []int{2, 3}
	if len(gained) != len(want) {
		t.Fatalf("gained = %v; want %v", gained, want)
	}
	for i := range want {
		if gained[i] != want[i] {
			t.Fatalf("gained = %v; want %v", gained, want)
		}
	}
}
