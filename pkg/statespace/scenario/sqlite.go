package scenario

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	// ErrStoreClosed is returned by GraphStore methods after Close.
	ErrStoreClosed = errors.New("graph store closed")

	// ErrGraphNotFound is returned when a named graph has no edges.
	ErrGraphNotFound = errors.New("graph not found")
)

// GraphStore persists named edge lists to SQLite.
// It is suitable for single-process use.
type GraphStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewGraphStore opens (or creates) a graph database.
// The path should be a file path (e.g., "./graphs.db") or ":memory:" for testing.
func NewGraphStore(path string) (*GraphStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS edges (
			graph TEXT NOT NULL,
			ord INTEGER NOT NULL,
			src TEXT NOT NULL,
			dst TEXT NOT NULL,
			cost REAL NOT NULL,
			PRIMARY KEY (graph, ord)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &GraphStore{db: db}, nil
}

// SaveGraph replaces the edges stored under name. Edge order is preserved.
func (s *GraphStore) SaveGraph(ctx context.Context, name string, edges []Edge) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM edges WHERE graph = ?`, name); err != nil {
		return fmt.Errorf("clear graph %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO edges (graph, ord, src, dst, cost)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range edges {
		if _, err = stmt.ExecContext(ctx, name, i, e.From, e.To, e.Cost); err != nil {
			return fmt.Errorf("insert edge %d of %q: %w", i, name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit graph %q: %w", name, err)
	}
	return nil
}

// LoadEdges returns the edges stored under name in insertion order.
func (s *GraphStore) LoadEdges(ctx context.Context, name string) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT src, dst, cost FROM edges
		WHERE graph = ?
		ORDER BY ord
	`, name)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.From, &e.To, &e.Cost); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edges: %w", err)
	}

	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	return edges, nil
}

// LoadGraph builds a Graph from the edges stored under name.
func (s *GraphStore) LoadGraph(ctx context.Context, name string, directed bool) (*Graph, error) {
	edges, err := s.LoadEdges(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewGraph(directed, edges)
}

// Graphs lists the stored graph names in ascending order.
func (s *GraphStore) Graphs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT graph FROM edges ORDER BY graph`)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan graph name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graphs: %w", err)
	}
	return names, nil
}

// DeleteGraph removes every edge stored under name.
func (s *GraphStore) DeleteGraph(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM edges WHERE graph = ?`, name); err != nil {
		return fmt.Errorf("delete graph %q: %w", name, err)
	}
	return nil
}

// Close closes the database. It is safe to call more than once.
func (s *GraphStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
