package game

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestTapGains(t *testing.T) {
	cases := []struct {
		name                  string
		power, mainP, locP    string
		wantLoc, wantMain     string
	}{
		{"base stats", "1", "0.5", "1", "1", "1"}, // 0.5 rounds up
		{"strong tool", "3", "0.5", "1", "3", "2"},
		{"fractional powers", "2", "0.25", "1.5", "3", "1"},
		{"zero main power", "1", "0", "1", "1", "0"},
	}

	for _, tc := range cases {
		s := TapStats{Power: d(tc.power), MainCoinsPower: d(tc.mainP), LocationCoinsPower: d(tc.locP)}
		loc, main := TapGains(s)
		if !loc.Equal(d(tc.wantLoc)) || !main.Equal(d(tc.wantMain)) {
			t.Fatalf("%s: TapGains = (%s, %s); want (%s, %s)", tc.name, loc, main, tc.wantLoc, tc.wantMain)
		}
	}
}

func TestClampCredit(t *testing.T) {
	cases := []struct {
		name                     string
		balance, delta, capacity string
		want                     string
	}{
		{"fits", "0", "1", "5", "1"},
		{"partial fill", "4.50", "1", "5", "0.50"},
		{"full storage", "5", "1", "5", "0"},
		{"over capacity already", "6", "1", "5", "0"},
		{"exact fit", "4", "1", "5", "1"},
	}

	for _, tc := range cases {
		got := ClampCredit(d(tc.balance), d(tc.delta), d(tc.capacity))
		if !got.Equal(d(tc.want)) {
			t.Fatalf("%s: ClampCredit = %s; want %s", tc.name, got, tc.want)
		}
		// post-balance must respect the cap
		if d(tc.balance).Add(got).GreaterThan(d(tc.capacity)) && !d(tc.balance).GreaterThan(d(tc.capacity)) {
			t.Fatalf("%s: post-balance exceeds capacity", tc.name)
		}
	}
}
