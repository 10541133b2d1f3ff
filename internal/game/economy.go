package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// UpgradeKind names one of the persistent upgrade tracks
type UpgradeKind string

const (
	UpgradeLine UpgradeKind = "line"
	UpgradeBait UpgradeKind = "bait"
	UpgradeRod  UpgradeKind = "rod"
)

// UpgradeKinds lists the tracks in market order
var UpgradeKinds = []UpgradeKind{UpgradeLine, UpgradeBait, UpgradeRod}

// ParseUpgradeKind validates an upgrade name
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	for _, k := range UpgradeKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown upgrade %q", s)
}

// Purchase rejections. The ledger is unchanged when either is returned.
var (
	ErrInsufficientFunds = errors.New("insufficient-funds")
	ErrMaxLevel          = errors.New("max-level")
)

// Persisted progress keys
const (
	KeyScore     = "currentScore"
	KeyMoney     = "playerMoney"
	KeyLineLevel = "lineLevel"
	KeyBaitLevel = "baitLevel"
	KeyRodLevel  = "rodLevel"
)

var levelKeys = map[UpgradeKind]string{
	UpgradeLine: KeyLineLevel,
	UpgradeBait: KeyBaitLevel,
	UpgradeRod:  KeyRodLevel,
}

// Progress is the player state that outlives a session
type Progress struct {
	Score  int
	Money  int
	Levels map[UpgradeKind]int
}

// NewProgress returns a fresh player with nothing earned
func NewProgress() *Progress {
	return &Progress{Levels: make(map[UpgradeKind]int, len(UpgradeKinds))}
}

// Level returns the level of an upgrade track
func (p *Progress) Level(kind UpgradeKind) int {
	return p.Levels[kind]
}

// Save flattens the progress into the persisted key/value form
func (p *Progress) Save() map[string]int {
	out := map[string]int{
		KeyScore: p.Score,
		KeyMoney: p.Money,
	}
	for kind, key := range levelKeys {
		out[key] = p.Levels[kind]
	}
	return out
}

// LoadProgress rebuilds progress from persisted pairs. Missing keys read as
// zero; negative values are rejected.
func LoadProgress(values map[string]int) (*Progress, error) {
	p := NewProgress()
	p.Score = values[KeyScore]
	p.Money = values[KeyMoney]
	if p.Score < 0 || p.Money < 0 {
		return nil, fmt.Errorf("negative score or money in saved progress")
	}
	for kind, key := range levelKeys {
		lvl := values[key]
		if lvl < 0 {
			return nil, fmt.Errorf("%s is negative: %d", key, lvl)
		}
		p.Levels[kind] = lvl
	}
	return p, nil
}

// TransactionKind labels a ledger entry
type TransactionKind string

const (
	TransactionSell    TransactionKind = "sell"
	TransactionUpgrade TransactionKind = "upgrade"
)

// Transaction is one completed market action
type Transaction struct {
	ID      uuid.UUID       `json:"id"`
	Kind    TransactionKind `json:"kind"`
	Points  int             `json:"points,omitempty"`
	Amount  int             `json:"amount"`
	Upgrade UpgradeKind     `json:"upgrade,omitempty"`
	Level   int             `json:"level,omitempty"`
}

// Ledger applies market operations to a Progress
type Ledger struct {
	cfg      EconomyConfig
	progress *Progress
	history  []Transaction
}

// NewLedger creates a ledger over progress
func NewLedger(cfg EconomyConfig, progress *Progress) *Ledger {
	if progress.Levels == nil {
		progress.Levels = make(map[UpgradeKind]int, len(UpgradeKinds))
	}
	return &Ledger{cfg: cfg, progress: progress}
}

// Progress returns the underlying player state
func (l *Ledger) Progress() *Progress { return l.progress }

// History returns the completed transactions, oldest first
func (l *Ledger) History() []Transaction {
	out := make([]Transaction, len(l.history))
	copy(out, l.history)
	return out
}

// SellAll converts the whole score into money at the exchange rate. With a
// zero score nothing happens and ok is false.
func (l *Ledger) SellAll() (tx Transaction, ok bool) {
	points := l.progress.Score
	if points <= 0 {
		return Transaction{}, false
	}
	amount := int(math.Floor(float64(points) * l.cfg.ExchangeRate))
	l.progress.Money += amount
	l.progress.Score = 0

	tx = Transaction{ID: uuid.New(), Kind: TransactionSell, Points: points, Amount: amount}
	l.history = append(l.history, tx)
	return tx, true
}

// UpgradeCost returns the price of buying the level after level
func (l *Ledger) UpgradeCost(kind UpgradeKind, level int) int {
	u := l.cfg.Upgrades[kind]
	return int(math.Floor(float64(u.BaseCost) * math.Pow(u.CostMultiplier, float64(level))))
}

// NextCost returns the price of the next level of kind and whether one exists
func (l *Ledger) NextCost(kind UpgradeKind) (int, bool) {
	level := l.progress.Level(kind)
	if level >= l.cfg.Upgrades[kind].MaxLevel {
		return 0, false
	}
	return l.UpgradeCost(kind, level), true
}

// Purchase buys the next level of kind
func (l *Ledger) Purchase(kind UpgradeKind) (Transaction, error) {
	u, ok := l.cfg.Upgrades[kind]
	if !ok {
		return Transaction{}, fmt.Errorf("unknown upgrade %q", kind)
	}
	level := l.progress.Level(kind)
	if level >= u.MaxLevel {
		return Transaction{}, ErrMaxLevel
	}
	cost := l.UpgradeCost(kind, level)
	if l.progress.Money < cost {
		return Transaction{}, ErrInsufficientFunds
	}

	l.progress.Money -= cost
	l.progress.Levels[kind] = level + 1

	tx := Transaction{ID: uuid.New(), Kind: TransactionUpgrade, Amount: cost, Upgrade: kind, Level: level + 1}
	l.history = append(l.history, tx)
	return tx, nil
}

// Value returns the current effect value of an upgrade track
func (l *Ledger) Value(kind UpgradeKind) float64 {
	return l.cfg.Upgrades[kind].Value(l.progress.Level(kind))
}
