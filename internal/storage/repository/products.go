package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// ListProductsByGroup возвращает все товары группы вместе с именем группы,
// в порядке возрастания id товара.
func (s *Storage) ListProductsByGroup(ctx context.Context, groupID int) ([]*models.Product, error) {
	const op = "storage.ListProductsByGroup"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.product_group_id, p.name, COALESCE(p.description, ''),
			      p.price, p.stock, pg.name AS group_name
			  FROM products p
			  JOIN product_groups pg ON p.product_group_id = pg.id
			  WHERE p.product_group_id = $1
			  ORDER BY p.id`
	rows, err := s.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.ProductGroupID, &item.Name,
			&item.Description, &item.Price, &item.Stock, &item.GroupName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProduct возвращает товар по паре (группа, id) вместе с именем группы.
// Если строки нет, возвращает ErrProductNotFound.
func (s *Storage) GetProduct(ctx context.Context, groupID, productID int) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.product_group_id, p.name, COALESCE(p.description, ''),
			      p.price, p.stock, pg.name AS group_name
			  FROM products p
			  JOIN product_groups pg ON p.product_group_id = pg.id
			  WHERE p.product_group_id = $1 AND p.id = $2`
	product := &models.Product{}
	row := s.DB.QueryRowContext(ctx, query, groupID, productID)
	if err := row.Scan(&product.ID, &product.ProductGroupID, &product.Name,
		&product.Description, &product.Price, &product.Stock, &product.GroupName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

// CreateProduct вставляет новый товар и возвращает его ID.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (int, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (product_group_id, name, description, price, stock)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		product.ProductGroupID, product.Name, product.Description,
		product.Price, product.Stock).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateProduct обновляет товар по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateProduct(ctx context.Context, productID int, product models.Product) (int64, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = $1, description = $2, price = $3, stock = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// DeleteProduct удаляет товар по его ID и возвращает количество удалённых строк.
func (s *Storage) DeleteProduct(ctx context.Context, productID int) (int64, error) {
	const op = "storage.DeleteProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
