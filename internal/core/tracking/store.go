// Package tracking owns the user-entered position ledger. The core engine
// only reads game state to annotate positions; it never mutates them.
package tracking

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kwhalen/nfl-edge/internal/telemetry"

	_ "modernc.org/sqlite"
)

// Position is one user-entered moneyline trade.
type Position struct {
	ID         string    `json:"id"`
	GameKey    string    `json:"game_key"` // away@home
	Pick       string    `json:"pick"`
	PriceCents int       `json:"price_cents"` // entry price, 1–99
	Contracts  int       `json:"contracts"`
	CostCents  int       `json:"cost_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrInvalid rejects bad user input synchronously; nothing is written.
var ErrInvalid = errors.New("invalid position")

func validate(p *Position) error {
	if p.GameKey == "" || !strings.Contains(p.GameKey, "@") {
		return fmt.Errorf("%w: game key required", ErrInvalid)
	}
	if p.Pick == "" {
		return fmt.Errorf("%w: pick required", ErrInvalid)
	}
	if p.PriceCents < 1 || p.PriceCents > 99 {
		return fmt.Errorf("%w: price must be 1-99 cents", ErrInvalid)
	}
	if p.Contracts < 1 {
		return fmt.Errorf("%w: contracts must be >= 1", ErrInvalid)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	id          TEXT PRIMARY KEY,
	game_key    TEXT NOT NULL,
	pick        TEXT NOT NULL,
	price_cents INTEGER NOT NULL,
	contracts   INTEGER NOT NULL,
	cost_cents  INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_positions_game ON positions(game_key);
`

// Store persists positions in a single-writer SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create positions dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init positions schema: %w", err)
	}

	var count int
	db.QueryRow(`SELECT COUNT(*) FROM positions`).Scan(&count)
	telemetry.Plainf("positions store: opened %s  rows=%d", path, count)

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Add validates and inserts a new position, assigning its ID.
func (s *Store) Add(p *Position) error {
	if err := validate(p); err != nil {
		return err
	}
	p.ID = uuid.NewString()
	p.CostCents = p.PriceCents * p.Contracts
	p.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO positions (id, game_key, pick, price_cents, contracts, cost_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.GameKey, p.Pick, p.PriceCents, p.Contracts, p.CostCents, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// Update rewrites the editable fields of an existing position.
func (s *Store) Update(id string, priceCents, contracts int, pick string) error {
	probe := Position{GameKey: "a@b", Pick: pick, PriceCents: priceCents, Contracts: contracts}
	if err := validate(&probe); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(
		`UPDATE positions SET price_cents = ?, contracts = ?, cost_cents = ?, pick = ? WHERE id = ?`,
		priceCents, contracts, priceCents*contracts, pick, id,
	)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: unknown position %s", ErrInvalid, id)
	}
	return nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM positions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM positions`); err != nil {
		return fmt.Errorf("clear positions: %w", err)
	}
	return nil
}

// List returns all positions oldest-first.
func (s *Store) List() ([]Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		`SELECT id, game_key, pick, price_cents, contracts, cost_cents, created_at
		 FROM positions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.GameKey, &p.Pick, &p.PriceCents, &p.Contracts, &p.CostCents, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
