// Package repository реализует хранилище данных на основе PostgreSQL.
// Предоставляет методы работы с пользователями, сессиями,
// группами товаров и товарами.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы переводят их в доменные ошибки,
// сырые ошибки базы не должны пересекать границу HTTP-слоя.
var (
	// ErrUserNotFound возвращается, если пользователь с таким username отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound возвращается, если живая сессия с таким токеном отсутствует.
	ErrSessionNotFound = errors.New("session not found")
	// ErrProductNotFound возвращается, если товар отсутствует.
	ErrProductNotFound = errors.New("product not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет, что схема применена и таблица users существует.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
