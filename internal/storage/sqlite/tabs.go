package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tabscan/tabscan/internal/models"
)

// CreateTab persists a new tab with its participants and items.
func (s *SQLiteStore) CreateTab(ctx context.Context, tab *models.Tab) error {
	if tab.ID == "" {
		tab.ID = uuid.New().String()
	}
	if tab.CreatedAt == 0 {
		tab.CreatedAt = time.Now().Unix()
	}
	if tab.Title == "" {
		tab.Title = generateTitle(tab.Participants)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO tabs (id, title, created_by, created_at) VALUES (?, ?, ?, ?)",
		tab.ID, tab.Title, tab.CreatedBy, tab.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tab: %w", err)
	}

	for i, name := range tab.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO tab_participants (tab_id, position, name) VALUES (?, ?, ?)",
			tab.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for i := range tab.Items {
		item := &tab.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO tab_items (id, tab_id, position, name, price, quantity, assigned_to) VALUES (?, ?, ?, ?, ?, ?, ?)",
			item.ID, tab.ID, i, item.Name, item.Price, item.Quantity, item.AssignedTo,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tab item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTab retrieves a tab by ID, including participants and items.
func (s *SQLiteStore) GetTab(ctx context.Context, tabID string) (*models.Tab, error) {
	tab := &models.Tab{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, created_by, created_at FROM tabs WHERE id = ?",
		tabID,
	).Scan(&tab.ID, &tab.Title, &tab.CreatedBy, &tab.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tab not found: %s", tabID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tab: %w", err)
	}

	if err := s.loadTabDetails(ctx, tab); err != nil {
		return nil, err
	}
	return tab, nil
}

// ListTabs retrieves all tabs created by a user, newest first.
func (s *SQLiteStore) ListTabs(ctx context.Context, userID string) ([]models.Tab, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, created_by, created_at FROM tabs WHERE created_by = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tabs: %w", err)
	}
	defer rows.Close()

	var tabs []models.Tab
	for rows.Next() {
		var tab models.Tab
		if err := rows.Scan(&tab.ID, &tab.Title, &tab.CreatedBy, &tab.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tab row: %w", err)
		}
		tabs = append(tabs, tab)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tabs: %w", err)
	}

	for i := range tabs {
		if err := s.loadTabDetails(ctx, &tabs[i]); err != nil {
			return nil, err
		}
	}
	return tabs, nil
}

func (s *SQLiteStore) loadTabDetails(ctx context.Context, tab *models.Tab) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM tab_participants WHERE tab_id = ? ORDER BY position",
		tab.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		tab.Participants = append(tab.Participants, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, quantity, assigned_to FROM tab_items WHERE tab_id = ? ORDER BY position",
		tab.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get tab items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.TabItem
		if err := itemRows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.AssignedTo); err != nil {
			return fmt.Errorf("failed to scan tab item: %w", err)
		}
		tab.Items = append(tab.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate tab items: %w", err)
	}
	return nil
}

// generateTitle builds a readable default title from the participant list.
func generateTitle(participants []string) string {
	switch len(participants) {
	case 0:
		return "Tab"
	case 1:
		return "Tab with " + participants[0]
	case 2:
		return "Tab with " + participants[0] + " and " + participants[1]
	default:
		return fmt.Sprintf("Tab with %s and %d others",
			strings.Join(participants[:2], ", "), len(participants)-2)
	}
}
