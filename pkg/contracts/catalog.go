package contracts

import (
	"context"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Catalog is the thread-color reference database. It is listed and searched
// by the CLI palette commands and written by the CLI import tooling. Implementations must be safe for concurrent use.
type Catalog interface {
	// SaveItem creates or updates a catalog entry keyed by (brand, number).
	SaveItem(ctx context.Context, item models.PaletteItem) error

	// GetItem retrieves an entry by brand and number.
	// Returns (zero, false, nil) when no such entry exists.
	GetItem(ctx context.Context, brand, number string) (models.PaletteItem, bool, error)

	// ListBrand retrieves every entry of a brand ordered by number.
	ListBrand(ctx context.Context, brand string) ([]models.PaletteItem, error)

	// Brands lists the distinct brands in the catalog.
	Brands(ctx context.Context) ([]string, error)

	// Close releases the underlying store.
	Close() error
}
