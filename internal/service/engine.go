package service

import (
	"context"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/catalog"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/notify"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config are the engine's policy knobs.
type Config struct {
	// TapExperience is the flat experience granted per tap.
	TapExperience int64
	// EnergyPerMinute is the lazy energy regeneration rate.
	EnergyPerMinute int
	// DefaultMaxEnergy seeds max_energy for new players.
	DefaultMaxEnergy int
}

func DefaultConfig() Config {
	return Config{
		TapExperience:    1,
		EnergyPerMinute:  1,
		DefaultMaxEnergy: 100,
	}
}

// Engine owns all mutable player state. Every public operation runs in one
// database transaction holding a FOR UPDATE lock on the player row, so
// operations on the same player are serialized while different players
// proceed in parallel.
type Engine struct {
	db   *pgxpool.Pool
	cat  *catalog.Catalog
	cfg  Config
	now  func() time.Time
	sink notify.Sink
}

func NewEngine(db *pgxpool.Pool, cat *catalog.Catalog, cfg Config, sink notify.Sink) *Engine {
	if sink == nil {
		sink = notify.Noop{}
	}
	return &Engine{db: db, cat: cat, cfg: cfg, now: time.Now, sink: sink}
}

// WithClock overrides the engine clock; tests use it to replay elapsed time.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// repos bundles the repositories bound to one transaction.
type repos struct {
	players      *repository.PlayerRepository
	ledger       *repository.LedgerRepository
	income       *repository.IncomeRepository
	tools        *repository.ToolRepository
	helpers      *repository.HelperRepository
	unlocks      *repository.UnlockRepository
	storage      *repository.StorageRepository
	seasons      *repository.SeasonRepository
	achievements *repository.AchievementRepository
}

func newRepos(q repository.Querier) *repos {
	return &repos{
		players:      repository.NewPlayerRepository(q),
		ledger:       repository.NewLedgerRepository(q),
		income:       repository.NewIncomeRepository(q),
		tools:        repository.NewToolRepository(q),
		helpers:      repository.NewHelperRepository(q),
		unlocks:      repository.NewUnlockRepository(q),
		storage:      repository.NewStorageRepository(q),
		seasons:      repository.NewSeasonRepository(q),
		achievements: repository.NewAchievementRepository(q),
	}
}

// withPlayer is the transaction scope of every engine operation: create the
// player lazily, lock its row, run fn, commit, then publish whatever events
// fn produced. A rolled-back transaction publishes nothing.
func (e *Engine) withPlayer(ctx context.Context, userID string, fn func(r *repos, p *domain.Player) ([]domain.Event, error)) error {
	tx, err := e.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	r := newRepos(tx)
	created, err := r.players.Ensure(ctx, userID, e.cfg.DefaultMaxEnergy, e.now())
	if err != nil {
		return err
	}
	p, err := r.players.GetForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if created {
		if err := e.seedNewPlayer(ctx, r, p); err != nil {
			return err
		}
	}

	events, err := fn(r, p)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	for _, ev := range events {
		e.sink.Publish(ev)
	}
	return nil
}

// seedNewPlayer grants the starter unlocks: every level-1 location and the
// free starter tool for its character, equipped.
func (e *Engine) seedNewPlayer(ctx context.Context, r *repos, p *domain.Player) error {
	for _, loc := range e.cat.StarterLocations() {
		if err := r.unlocks.UnlockLocation(ctx, p.UserID, loc.ID); err != nil {
			return err
		}
		if err := r.ledger.EnsureAccount(ctx, p.UserID, loc.CurrencyID); err != nil {
			return err
		}
	}
	if err := r.ledger.EnsureAccount(ctx, p.UserID, domain.MainCurrency); err != nil {
		return err
	}
	for _, t := range e.cat.StarterTools() {
		equipped, err := r.tools.HasEquippedForCharacter(ctx, p.UserID, t.CharacterID)
		if err != nil {
			return err
		}
		if _, err := r.tools.Insert(ctx, p.UserID, t.ID, t.CharacterID, !equipped); err != nil {
			return err
		}
	}
	return nil
}
