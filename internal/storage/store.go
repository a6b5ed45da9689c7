// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/tabscan/tabscan/internal/models"
)

// Store defines the interface for tabscan's storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// SaveScan persists a scan result under the given user (may be empty for
	// anonymous scans). The scan.ID and scan.CreatedAt fields are populated
	// by the store.
	SaveScan(ctx context.Context, userID string, scan *models.ScanResult) error

	// GetScan retrieves a scan by ID, items in original line order.
	GetScan(ctx context.Context, scanID string) (*models.ScanResult, error)

	// ListScans retrieves all scans saved by a user, newest first.
	ListScans(ctx context.Context, userID string) ([]models.ScanResult, error)

	// CreateTab persists a new tab. The tab.ID, item IDs, and CreatedAt are
	// populated by the store.
	CreateTab(ctx context.Context, tab *models.Tab) error

	// GetTab retrieves a tab by ID, including participants and items.
	GetTab(ctx context.Context, tabID string) (*models.Tab, error)

	// ListTabs retrieves all tabs created by a user, newest first.
	ListTabs(ctx context.Context, userID string) ([]models.Tab, error)

	// Close releases any resources held by the store.
	Close() error
}
