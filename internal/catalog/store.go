package catalog

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Store implements contracts.Catalog on a Database.
type Store struct {
	db *Database
	mu sync.RWMutex
}

// NewStore creates a catalog store around an open database.
func NewStore(db *Database) *Store {
	return &Store{db: db}
}

// SaveItem creates or updates a catalog entry keyed by (brand, number).
func (s *Store) SaveItem(ctx context.Context, item models.PaletteItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var beadLength, beadDiameter sql.NullFloat64
	if item.Bead != nil {
		beadLength = sql.NullFloat64{Float64: item.Bead.Length, Valid: true}
		beadDiameter = sql.NullFloat64{Float64: item.Bead.Diameter, Valid: true}
	}

	_, err := s.db.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO threads (brand, number, name, color, bead_length, bead_diameter, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, item.Brand, item.Number, item.Name, item.Color, beadLength, beadDiameter, time.Now().Unix())
	return err
}

// GetItem retrieves an entry by brand and number.
func (s *Store) GetItem(ctx context.Context, brand, number string) (models.PaletteItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var item models.PaletteItem
	var beadLength, beadDiameter sql.NullFloat64

	err := s.db.db.QueryRowContext(ctx, `
		SELECT brand, number, name, color, bead_length, bead_diameter
		FROM threads WHERE brand = ? AND number = ?
	`, brand, number).Scan(&item.Brand, &item.Number, &item.Name, &item.Color, &beadLength, &beadDiameter)
	if err == sql.ErrNoRows {
		return models.PaletteItem{}, false, nil
	}
	if err != nil {
		return models.PaletteItem{}, false, err
	}

	if beadLength.Valid && beadDiameter.Valid {
		item.Bead = &models.Bead{Length: beadLength.Float64, Diameter: beadDiameter.Float64}
	}
	return item, true, nil
}

// ListBrand retrieves every entry of a brand ordered by number.
func (s *Store) ListBrand(ctx context.Context, brand string) ([]models.PaletteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.db.QueryContext(ctx, `
		SELECT brand, number, name, color, bead_length, bead_diameter
		FROM threads WHERE brand = ? ORDER BY number
	`, brand)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PaletteItem
	for rows.Next() {
		var item models.PaletteItem
		var beadLength, beadDiameter sql.NullFloat64
		if err := rows.Scan(&item.Brand, &item.Number, &item.Name, &item.Color, &beadLength, &beadDiameter); err != nil {
			return nil, err
		}
		if beadLength.Valid && beadDiameter.Valid {
			item.Bead = &models.Bead{Length: beadLength.Float64, Diameter: beadDiameter.Float64}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Brands lists the distinct brands in the catalog.
func (s *Store) Brands(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.db.QueryContext(ctx, `SELECT DISTINCT brand FROM threads ORDER BY brand`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
