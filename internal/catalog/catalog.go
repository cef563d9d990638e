// Package catalog holds the static game configuration: locations, tools,
// helpers, the level ladder, ranks and achievements. Loaded once at startup
// and immutable afterwards, so request handling reads it without locking.
package catalog

import (
	"sort"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

type Catalog struct {
	currencies   map[domain.CurrencyID]domain.Currency
	locations    map[string]domain.Location
	tools        map[string]domain.Tool
	toolLevels   map[string]map[int]domain.ToolLevel
	helpers      map[string]domain.Helper
	helperLevels map[string]map[int]domain.HelperLevel
	levels       map[int]domain.LevelDef
	storage      map[string]map[int]domain.StorageLevel
	ranks        []domain.Rank
	achievements []domain.Achievement
	seasons      map[string]domain.Season
}

// Data is the raw material a Catalog is built from; the loader fills it from
// the database, tests fill it by hand.
type Data struct {
	Currencies    []domain.Currency
	Locations     []domain.Location
	Tools         []domain.Tool
	ToolLevels    []domain.ToolLevel
	Helpers       []domain.Helper
	HelperLevels  []domain.HelperLevel
	Levels        []domain.LevelDef
	StorageLevels []domain.StorageLevel
	Ranks         []domain.Rank
	Achievements  []domain.Achievement
	Seasons       []domain.Season
}

func New(d Data) *Catalog {
	c := &Catalog{
		currencies:   make(map[domain.CurrencyID]domain.Currency),
		locations:    make(map[string]domain.Location),
		tools:        make(map[string]domain.Tool),
		toolLevels:   make(map[string]map[int]domain.ToolLevel),
		helpers:      make(map[string]domain.Helper),
		helperLevels: make(map[string]map[int]domain.HelperLevel),
		levels:       make(map[int]domain.LevelDef),
		storage:      make(map[string]map[int]domain.StorageLevel),
		seasons:      make(map[string]domain.Season),
	}
	for _, cur := range d.Currencies {
		c.currencies[cur.ID] = cur
	}
	for _, l := range d.Locations {
		c.locations[l.ID] = l
	}
	for _, t := range d.Tools {
		c.tools[t.ID] = t
	}
	for _, tl := range d.ToolLevels {
		if c.toolLevels[tl.ToolID] == nil {
			c.toolLevels[tl.ToolID] = make(map[int]domain.ToolLevel)
		}
		c.toolLevels[tl.ToolID][tl.Level] = tl
	}
	for _, h := range d.Helpers {
		c.helpers[h.ID] = h
	}
	for _, hl := range d.HelperLevels {
		if c.helperLevels[hl.HelperID] == nil {
			c.helperLevels[hl.HelperID] = make(map[int]domain.HelperLevel)
		}
		c.helperLevels[hl.HelperID][hl.Level] = hl
	}
	for _, lv := range d.Levels {
		c.levels[lv.Level] = lv
	}
	for _, sl := range d.StorageLevels {
		if c.storage[sl.LocationID] == nil {
			c.storage[sl.LocationID] = make(map[int]domain.StorageLevel)
		}
		c.storage[sl.LocationID][sl.Level] = sl
	}
	for _, s := range d.Seasons {
		c.seasons[s.ID] = s
	}

	c.ranks = append(c.ranks, d.Ranks...)
	sort.Slice(c.ranks, func(i, j int) bool { return c.ranks[i].MinPoints < c.ranks[j].MinPoints })
	c.achievements = append(c.achievements, d.Achievements...)
	return c
}

func (c *Catalog) Currency(id domain.CurrencyID) (domain.Currency, error) {
	cur, ok := c.currencies[id]
	if !ok {
		return domain.Currency{}, domain.ErrNotFound
	}
	return cur, nil
}

func (c *Catalog) Location(id string) (domain.Location, error) {
	l, ok := c.locations[id]
	if !ok {
		return domain.Location{}, domain.ErrNotFound
	}
	return l, nil
}

// LocationForCurrency finds the location scoped to a currency, if any. The
// main currency belongs to no location and is uncapped.
func (c *Catalog) LocationForCurrency(id domain.CurrencyID) (domain.Location, bool) {
	for _, l := range c.locations {
		if l.CurrencyID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

func (c *Catalog) Tool(id string) (domain.Tool, error) {
	t, ok := c.tools[id]
	if !ok {
		return domain.Tool{}, domain.ErrNotFound
	}
	return t, nil
}

func (c *Catalog) ToolLevel(toolID string, level int) (domain.ToolLevel, error) {
	tl, ok := c.toolLevels[toolID][level]
	if !ok {
		return domain.ToolLevel{}, domain.ErrNotFound
	}
	return tl, nil
}

func (c *Catalog) Helper(id string) (domain.Helper, error) {
	h, ok := c.helpers[id]
	if !ok {
		return domain.Helper{}, domain.ErrNotFound
	}
	return h, nil
}

func (c *Catalog) HelperLevel(helperID string, level int) (domain.HelperLevel, error) {
	hl, ok := c.helperLevels[helperID][level]
	if !ok {
		return domain.HelperLevel{}, domain.ErrNotFound
	}
	return hl, nil
}

// ExpToNext is the experience needed to leave the given level. ok is false
// at the top of the ladder.
func (c *Catalog) ExpToNext(level int) (int64, bool) {
	lv, ok := c.levels[level]
	if !ok || lv.ExpToNext <= 0 {
		return 0, false
	}
	// a level with no successor defined ends the ladder
	if _, next := c.levels[level+1]; !next {
		return 0, false
	}
	return lv.ExpToNext, true
}

// LevelRewards returns the rewards granted on reaching level.
func (c *Catalog) LevelRewards(level int) []domain.Reward {
	return c.levels[level].Rewards
}

func (c *Catalog) StorageLevel(locationID string, level int) (domain.StorageLevel, error) {
	sl, ok := c.storage[locationID][level]
	if !ok {
		return domain.StorageLevel{}, domain.ErrNotFound
	}
	return sl, nil
}

// Ranks returns the threshold table sorted ascending by MinPoints.
func (c *Catalog) Ranks() []domain.Rank { return c.ranks }

func (c *Catalog) Achievements() []domain.Achievement { return c.achievements }

func (c *Catalog) Season(id string) (domain.Season, error) {
	s, ok := c.seasons[id]
	if !ok {
		return domain.Season{}, domain.ErrNotFound
	}
	return s, nil
}

// StarterLocations are unlocked for every new player.
func (c *Catalog) StarterLocations() []domain.Location {
	var out []domain.Location
	for _, l := range c.locations {
		if l.UnlockLevel <= 1 {
			out = append(out, l)
		}
	}
	return out
}

// StarterTools are granted (and equipped) on player creation.
func (c *Catalog) StarterTools() []domain.Tool {
	var out []domain.Tool
	for _, t := range c.tools {
		if t.UnlockLevel <= 1 && t.Cost.IsZero() {
			out = append(out, t)
		}
	}
	return out
}
