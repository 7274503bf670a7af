// Package catalog содержит бизнес-логику каталога: группы товаров и товары.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Доменные ошибки каталога.
var (
	// ErrNotFound возвращается, когда запрошенный товар отсутствует
	// либо обновление/удаление не затронуло ни одной строки.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateName возвращается, когда группа с таким именем уже есть.
	ErrDuplicateName = errors.New("product group name already exists")
)

// Repository описывает контракт хранилища каталога.
type Repository interface {
	ListGroups(ctx context.Context) ([]*models.ProductGroup, error)
	CountGroupsByName(ctx context.Context, name string) (int, error)
	CreateGroup(ctx context.Context, group models.ProductGroup) (int, error)
	ListProductsByGroup(ctx context.Context, groupID int) ([]*models.Product, error)
	GetProduct(ctx context.Context, groupID, productID int) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (int, error)
	UpdateProduct(ctx context.Context, productID int, product models.Product) (int64, error)
	DeleteProduct(ctx context.Context, productID int) (int64, error)
}

// Service реализует операции каталога поверх репозитория.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает Service каталога.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// ListGroups возвращает все группы товаров по возрастанию id.
func (s *Service) ListGroups(ctx context.Context) ([]*models.ProductGroup, error) {
	const op = "catalog.ListGroups"

	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		s.log.Error("failed to list product groups", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return groups, nil
}

// CreateGroup создает группу товаров после проверки уникальности имени.
// Проверка и вставка — два отдельных запроса; гонка между ними
// унаследована от исходной системы и сознательно не закрыта
// ограничением в схеме.
func (s *Service) CreateGroup(ctx context.Context, group models.ProductGroup) (*models.ProductGroup, error) {
	const op = "catalog.CreateGroup"

	count, err := s.repo.CountGroupsByName(ctx, group.Name)
	if err != nil {
		s.log.Error("failed to check group name", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	newID, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		s.log.Error("failed to create product group", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	group.ID = newID
	s.log.Info("product group created", slog.Int("id", newID), slog.String("name", group.Name))
	return &group, nil
}

// ListProducts возвращает товары группы вместе с именем группы.
func (s *Service) ListProducts(ctx context.Context, groupID int) ([]*models.Product, error) {
	const op = "catalog.ListProducts"

	products, err := s.repo.ListProductsByGroup(ctx, groupID)
	if err != nil {
		s.log.Error("failed to list products", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// GetProduct возвращает один товар по паре (группа, id).
func (s *Service) GetProduct(ctx context.Context, groupID, productID int) (*models.Product, error) {
	const op = "catalog.GetProduct"

	product, err := s.repo.GetProduct(ctx, groupID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to fetch product", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

// CreateProduct создает товар и возвращает его с присвоенным ID.
func (s *Service) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "catalog.CreateProduct"

	newID, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.log.Error("failed to create product", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	product.ID = newID
	s.log.Info("product created", slog.Int("id", newID))
	return &product, nil
}

// UpdateProduct обновляет товар по ID. Если ни одна строка не изменена,
// возвращает ErrNotFound.
func (s *Service) UpdateProduct(ctx context.Context, productID int, product models.Product) (*models.Product, error) {
	const op = "catalog.UpdateProduct"

	rowsAffected, err := s.repo.UpdateProduct(ctx, productID, product)
	if err != nil {
		s.log.Error("failed to update product", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}
	product.ID = productID
	return &product, nil
}

// RemoveProduct удаляет товар по ID. Если ни одна строка не удалена,
// возвращает ErrNotFound.
func (s *Service) RemoveProduct(ctx context.Context, productID int) error {
	const op = "catalog.RemoveProduct"

	rowsAffected, err := s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		s.log.Error("failed to delete product", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
