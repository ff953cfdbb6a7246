package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/glamstack/attire/internal/common"
	"github.com/glamstack/attire/internal/model"
)

// SaveItems upserts catalog items in a single transaction.
func (s *SQLiteStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_items (id, name, brand, category, price, description, image_ref, source_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			brand = excluded.brand,
			category = excluded.category,
			price = excluded.price,
			description = excluded.description,
			image_ref = excluded.image_ref,
			source_url = excluded.source_url`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Brand, string(item.Category),
			item.Price, item.Description, item.ImageRef, item.SourceURL,
		); err != nil {
			return fmt.Errorf("failed to save item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit items: %w", err)
	}

	slog.Debug("saved catalog items", "count", len(items))
	return nil
}

// ListItems returns all stored catalog items in import order.
func (s *SQLiteStorage) ListItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, brand, category, price, description, image_ref, source_url
		FROM catalog_items
		ORDER BY imported_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var (
			item     model.Item
			category string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Brand, &category,
			&item.Price, &item.Description, &item.ImageRef, &item.SourceURL); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Category = model.Category(category)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// GetItem returns one item by ID.
func (s *SQLiteStorage) GetItem(ctx context.Context, id string) (*model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var (
		item     model.Item
		category string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, brand, category, price, description, image_ref, source_url
		FROM catalog_items
		WHERE id = ?`, id).Scan(&item.ID, &item.Name, &item.Brand, &category,
		&item.Price, &item.Description, &item.ImageRef, &item.SourceURL)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	item.Category = model.Category(category)
	return &item, nil
}

// CountItems returns the number of stored catalog items.
func (s *SQLiteStorage) CountItems(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// Clear removes all stored catalog items.
func (s *SQLiteStorage) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM catalog_items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}
