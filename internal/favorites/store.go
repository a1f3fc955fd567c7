package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ziadkadry99/restohub/internal/db"
	"github.com/ziadkadry99/restohub/internal/restaurant"
)

// ErrNotFound is returned when a restaurant is not a favorite.
var ErrNotFound = errors.New("favorite not found")

// Store persists favorite restaurants keyed by restaurant id. The value is
// the full restaurant record.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Put saves r as a favorite, replacing an earlier record with the same id.
func (s *Store) Put(ctx context.Context, r restaurant.Restaurant) error {
	if r.ID == "" {
		return fmt.Errorf("restaurant id is required")
	}
	record, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling restaurant: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorite_restaurants (id, record) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record`,
		r.ID, string(record),
	)
	if err != nil {
		return fmt.Errorf("saving favorite %s: %w", r.ID, err)
	}
	return nil
}

// Get returns the stored record for id.
func (s *Store) Get(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		"SELECT record FROM favorite_restaurants WHERE id = ?", id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading favorite %s: %w", id, err)
	}

	var r restaurant.Restaurant
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return nil, fmt.Errorf("decoding favorite %s: %w", id, err)
	}
	return &r, nil
}

// Has reports whether id is a favorite.
func (s *Store) Has(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM favorite_restaurants WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking favorite %s: %w", id, err)
	}
	return n > 0, nil
}

// Delete removes id. Deleting a restaurant that is not a favorite is not an
// error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM favorite_restaurants WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting favorite %s: %w", id, err)
	}
	return nil
}

// List returns all favorites in the order they were added.
func (s *Store) List(ctx context.Context) ([]restaurant.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, record FROM favorite_restaurants ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	list := []restaurant.Restaurant{}
	for rows.Next() {
		var id, record string
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		var r restaurant.Restaurant
		if err := json.Unmarshal([]byte(record), &r); err != nil {
			return nil, fmt.Errorf("decoding favorite %s: %w", id, err)
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// Count returns the number of favorites.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM favorite_restaurants").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting favorites: %w", err)
	}
	return n, nil
}
