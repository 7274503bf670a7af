package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// ListGroups возвращает все группы товаров в порядке возрастания id.
func (s *Storage) ListGroups(ctx context.Context) ([]*models.ProductGroup, error) {
	const op = "storage.ListGroups"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, COALESCE(description, '')
			  FROM product_groups
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ProductGroup
	for rows.Next() {
		var item models.ProductGroup
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountGroupsByName возвращает количество групп с точно таким именем.
// Используется предварительной проверкой уникальности имени при создании.
func (s *Storage) CountGroupsByName(ctx context.Context, name string) (int, error) {
	const op = "storage.CountGroupsByName"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM product_groups WHERE name = $1`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CreateGroup вставляет новую группу товаров и возвращает её ID.
func (s *Storage) CreateGroup(ctx context.Context, group models.ProductGroup) (int, error) {
	const op = "storage.CreateGroup"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO product_groups (name, description)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		group.Name, group.Description).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
