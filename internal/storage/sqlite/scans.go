package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tabscan/tabscan/internal/models"
)

// SaveScan persists a scan result and its items in a single transaction.
func (s *SQLiteStore) SaveScan(ctx context.Context, userID string, scan *models.ScanResult) error {
	if scan.ID == "" {
		scan.ID = uuid.New().String()
	}
	if scan.CreatedAt == 0 {
		scan.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO scans (id, user_id, source_kind, source_id, original_text, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		scan.ID, userID, string(scan.SourceKind), scan.SourceID, scan.OriginalText, scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	for i, item := range scan.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO scan_items (scan_id, position, name, price, quantity) VALUES (?, ?, ?, ?, ?)",
			scan.ID, i, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert scan item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetScan retrieves a scan by ID with items in original line order.
func (s *SQLiteStore) GetScan(ctx context.Context, scanID string) (*models.ScanResult, error) {
	scan := &models.ScanResult{}
	var kind string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, source_kind, source_id, original_text, created_at FROM scans WHERE id = ?",
		scanID,
	).Scan(&scan.ID, &kind, &scan.SourceID, &scan.OriginalText, &scan.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan not found: %s", scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	scan.SourceKind = models.SourceKind(kind)

	items, err := s.scanItems(ctx, scan.ID)
	if err != nil {
		return nil, err
	}
	scan.Items = items
	return scan, nil
}

// ListScans retrieves all scans saved by a user, newest first.
func (s *SQLiteStore) ListScans(ctx context.Context, userID string) ([]models.ScanResult, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source_kind, source_id, original_text, created_at FROM scans WHERE user_id = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []models.ScanResult
	for rows.Next() {
		var scan models.ScanResult
		var kind string
		if err := rows.Scan(&scan.ID, &kind, &scan.SourceID, &scan.OriginalText, &scan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scan.SourceKind = models.SourceKind(kind)
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}

	for i := range scans {
		items, err := s.scanItems(ctx, scans[i].ID)
		if err != nil {
			return nil, err
		}
		scans[i].Items = items
	}
	return scans, nil
}

func (s *SQLiteStore) scanItems(ctx context.Context, scanID string) ([]models.ParsedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, price, quantity FROM scan_items WHERE scan_id = ? ORDER BY position",
		scanID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan items: %w", err)
	}
	defer rows.Close()

	var items []models.ParsedItem
	for rows.Next() {
		var item models.ParsedItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan items: %w", err)
	}
	return items, nil
}
