package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/catalog"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// testCatalog matches nothing in the seed; player tables carry no foreign
// keys into catalog tables, so tests can bring their own configuration.
func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Data{
		Currencies: []domain.Currency{
			{ID: domain.MainCurrency, Name: "Coins"},
			{ID: "it_forest", Name: "Forest wood"},
		},
		Locations: []domain.Location{
			{ID: "it_garden", Name: "Garden", CharacterID: "it_gardener", CurrencyID: "it_forest", UnlockLevel: 1},
		},
		Tools: []domain.Tool{
			{ID: "it_shovel", CharacterID: "it_gardener", CostCurrency: domain.MainCurrency, UnlockLevel: 1, MaxLevel: 2},
		},
		ToolLevels: []domain.ToolLevel{
			{ToolID: "it_shovel", Level: 1, Power: dec("1"), MainCoinsPower: dec("0.5"), LocationCoinsPower: dec("1")},
			{ToolID: "it_shovel", Level: 2, Power: dec("2"), MainCoinsPower: dec("1"), LocationCoinsPower: dec("2"), UpgradeCost: dec("10")},
		},
		Helpers: []domain.Helper{
			{ID: "it_gnome", LocationID: "it_garden", CurrencyID: "it_forest", CostCurrency: domain.MainCurrency, Cost: dec("5"), MaxLevel: 2},
		},
		HelperLevels: []domain.HelperLevel{
			{HelperID: "it_gnome", Level: 1, IncomePerHour: dec("60")},
			{HelperID: "it_gnome", Level: 2, IncomePerHour: dec("120"), UpgradeCost: dec("20")},
		},
		Levels: []domain.LevelDef{
			{Level: 1, ExpToNext: 100},
			{Level: 2, ExpToNext: 200, Rewards: []domain.Reward{{Kind: domain.RewardMainCurrency, Amount: dec("50")}}},
			{Level: 3},
		},
		StorageLevels: []domain.StorageLevel{
			{LocationID: "it_garden", Level: 1, Capacity: dec("5")},
			{LocationID: "it_garden", Level: 2, Capacity: dec("50"), UpgradeCost: dec("3")},
		},
		Ranks: []domain.Rank{
			{ID: 1, MinPoints: 0}, {ID: 2, MinPoints: 100}, {ID: 3, MinPoints: 300},
			{ID: 4, MinPoints: 600}, {ID: 5, MinPoints: 1000}, {ID: 6, MinPoints: 1500},
		},
		Achievements: []domain.Achievement{
			{ID: "it_first_tap", Condition: domain.CondTotalTaps, Threshold: 1, RewardMain: dec("1")},
		},
		Seasons: []domain.Season{{ID: "it_s1", Name: "Season 1"}},
	})
}

func newUser() string {
	return fmt.Sprintf("it-user-%d", time.Now().UnixNano())
}

func TestTapCreditsAndCaps(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	res, err := eng.Tap(ctx, user, "it_garden")
	if err != nil {
		t.Fatalf("tap: %v", err)
	}
	if !res.LocationGain.Equal(dec("1")) || !res.MainGain.Equal(dec("1")) {
		t.Fatalf("gains = (%s, %s); want (1, 1)", res.LocationGain, res.MainGain)
	}
	if res.StorageFull {
		t.Fatal("storage reported full on first tap")
	}

	// fill the 5-cap storage, then the next tap must clamp to zero
	for i := 0; i < 4; i++ {
		if _, err := eng.Tap(ctx, user, "it_garden"); err != nil {
			t.Fatalf("tap %d: %v", i, err)
		}
	}
	res, err = eng.Tap(ctx, user, "it_garden")
	if err != nil {
		t.Fatalf("tap at cap: %v", err)
	}
	if !res.LocationGain.IsZero() || !res.StorageFull {
		t.Fatalf("at cap: gain=%s full=%v; want 0, true", res.LocationGain, res.StorageFull)
	}
	if !res.MainGain.Equal(dec("1")) {
		t.Fatalf("main currency must still flow at cap, got %s", res.MainGain)
	}
}

func TestTapWithoutEnergy(t *testing.T) {
	db := connect(t)
	cfg := service.DefaultConfig()
	cfg.DefaultMaxEnergy = 1
	cfg.EnergyPerMinute = 0
	eng := service.NewEngine(db, testCatalog(), cfg, nil)
	ctx := context.Background()
	user := newUser()

	if _, err := eng.Tap(ctx, user, "it_garden"); err != nil {
		t.Fatalf("first tap: %v", err)
	}
	if _, err := eng.Tap(ctx, user, "it_garden"); err != domain.ErrNoEnergy {
		t.Fatalf("tap without energy = %v; want ErrNoEnergy", err)
	}
}

func TestExperienceCascade(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	if _, err := eng.AddExperience(ctx, user, 90); err != nil {
		t.Fatalf("seed exp: %v", err)
	}
	res, err := eng.AddExperience(ctx, user, 15)
	if err != nil {
		t.Fatalf("add exp: %v", err)
	}
	if !res.LevelUp || res.Level != 2 || res.Experience != 5 {
		t.Fatalf("cascade = %+v; want level 2, exp 5", res)
	}
	if len(res.Rewards) != 1 || res.Rewards[0].Kind != domain.RewardMainCurrency {
		t.Fatalf("rewards = %v; want one main-currency reward", res.Rewards)
	}

	snap, err := eng.GetProgress(ctx, user)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if got := snap.Balances[domain.MainCurrency]; !got.Equal(dec("50")) {
		t.Fatalf("main balance = %s; want 50", got)
	}
}

func TestRankFromPoints(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	res, err := eng.UpdateRank(ctx, user, "it_s1", 1050)
	if err != nil {
		t.Fatalf("update rank: %v", err)
	}
	if res.RankID != 5 || res.HighestRankID != 5 || !res.RankUp {
		t.Fatalf("rank = %+v; want rank 5, rank-up", res)
	}

	// points dropping demotes the rank but the highest mark stays
	res, err = eng.UpdateRank(ctx, user, "it_s1", 200)
	if err != nil {
		t.Fatalf("update rank down: %v", err)
	}
	if res.RankID != 2 || res.HighestRankID != 5 || res.RankUp {
		t.Fatalf("after drop = %+v; want rank 2, highest 5", res)
	}
}

func TestAchievementGrantIdempotent(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	if _, err := eng.Tap(ctx, user, "it_garden"); err != nil {
		t.Fatalf("tap: %v", err)
	}
	// the tap already scanned and granted; a later scan finds nothing new
	granted, err := eng.CheckAchievements(ctx, user)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(granted) != 0 {
		t.Fatalf("scan after tap granted %v; want nothing", granted)
	}
	snap, err := eng.GetProgress(ctx, user)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	count := 0
	for _, g := range snap.Achievements {
		if g.AchievementID == "it_first_tap" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("it_first_tap granted %d times", count)
	}
}

func TestTapGrantsTapAchievement(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	if _, err := eng.Tap(ctx, user, "it_garden"); err != nil {
		t.Fatalf("tap: %v", err)
	}

	// the grant and its 1-coin reward land inside the tap's own
	// transaction: 1 main from the tap plus 1 from the achievement
	snap, err := eng.GetProgress(ctx, user)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if got := snap.Balances[domain.MainCurrency]; !got.Equal(dec("2")) {
		t.Fatalf("main balance = %s; want 2 (tap gain + achievement reward)", got)
	}
	found := false
	for _, g := range snap.Achievements {
		if g.AchievementID == "it_first_tap" {
			found = true
		}
	}
	if !found {
		t.Fatal("it_first_tap not granted by the tap")
	}
}

func TestBuyHelperInsufficientFunds(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	// fresh player, empty main balance, helper costs 5
	if err := eng.BuyHelper(ctx, user, "it_gnome"); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("buy with empty balance = %v; want ErrInsufficientFunds", err)
	}

	// nothing mutated: no balance movement, no helper owned
	snap, err := eng.GetProgress(ctx, user)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if got := snap.Balances[domain.MainCurrency]; !got.IsZero() {
		t.Fatalf("main balance = %s after rejected buy; want 0", got)
	}
	if len(snap.Helpers) != 0 {
		t.Fatalf("helpers = %v after rejected buy; want none", snap.Helpers)
	}
}

func TestIdleIncomeAccrualAndCollect(t *testing.T) {
	db := connect(t)
	now := time.Now()
	clock := func() time.Time { return now }
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil).WithClock(clock)
	ctx := context.Background()
	user := newUser()

	// create player and buy the helper (5 main coins from seed exp reward)
	if _, err := eng.AddExperience(ctx, user, 100); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := eng.BuyHelper(ctx, user, "it_gnome"); err != nil {
		t.Fatalf("buy helper: %v", err)
	}

	// 10 minutes at 60/hour = 10.00 pending
	now = now.Add(10 * time.Minute)
	view, err := eng.GetPendingIncome(ctx, user)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if got := view.Currencies["it_forest"]; !got.Equal(dec("10")) {
		t.Fatalf("pending forest = %s; want 10", got)
	}

	// a second peek in the same instant must not grow the number
	view, err = eng.GetPendingIncome(ctx, user)
	if err != nil {
		t.Fatalf("pending again: %v", err)
	}
	if got := view.Currencies["it_forest"]; !got.Equal(dec("10")) {
		t.Fatalf("second peek = %s; want 10", got)
	}

	// collection clamps to the 5-cap storage and keeps the rest pending
	res, err := eng.CollectIncome(ctx, user)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	var forest *domain.CollectedCurrency
	for i := range res.Currencies {
		if res.Currencies[i].CurrencyID == "it_forest" {
			forest = &res.Currencies[i]
		}
	}
	if forest == nil {
		t.Fatal("no forest entry in collect result")
	}
	if !forest.Collected.Equal(dec("5")) || !forest.Remaining.Equal(dec("5")) || !forest.StorageFull {
		t.Fatalf("collect = %+v; want 5 collected, 5 remaining, storage full", *forest)
	}
}

func TestUpgradeStorageRaisesCap(t *testing.T) {
	db := connect(t)
	eng := service.NewEngine(db, testCatalog(), service.DefaultConfig(), nil)
	ctx := context.Background()
	user := newUser()

	// earn some forest currency first, then pay the 3-coin upgrade
	for i := 0; i < 5; i++ {
		if _, err := eng.Tap(ctx, user, "it_garden"); err != nil {
			t.Fatalf("tap: %v", err)
		}
	}
	if err := eng.UpgradeStorage(ctx, user, "it_garden"); err != nil {
		t.Fatalf("upgrade storage: %v", err)
	}
	// with the 50-cap the next tap credits again
	res, err := eng.Tap(ctx, user, "it_garden")
	if err != nil {
		t.Fatalf("tap after upgrade: %v", err)
	}
	if res.StorageFull || !res.LocationGain.Equal(dec("1")) {
		t.Fatalf("after upgrade = %+v; want uncapped gain", res)
	}

	// a second upgrade has no next level
	if err := eng.UpgradeStorage(ctx, user, "it_garden"); err != domain.ErrMaxLevel {
		t.Fatalf("second upgrade = %v; want ErrMaxLevel", err)
	}
}
