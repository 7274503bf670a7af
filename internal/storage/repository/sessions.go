package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// UpsertSession сохраняет сессию, заменяя существующую строку
// с тем же значением токена. Строки других токенов того же
// пользователя не затрагиваются.
func (s *Storage) UpsertSession(ctx context.Context, session models.Session) error {
	const op = "storage.UpsertSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO sessions (username, token, expires_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (token) DO UPDATE
			  SET username = EXCLUDED.username, expires_at = EXCLUDED.expires_at`
	if _, err := s.DB.ExecContext(ctx, query,
		session.Username, session.Token, session.ExpiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindLiveSession возвращает сессию с точным значением токена,
// срок действия которой ещё не истёк. Если такой строки нет,
// возвращает ErrSessionNotFound.
func (s *Storage) FindLiveSession(ctx context.Context, token string) (*models.Session, error) {
	const op = "storage.FindLiveSession"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, token, expires_at, created_at
			  FROM sessions
			  WHERE token = $1 AND expires_at > now()`
	session := &models.Session{}
	row := s.DB.QueryRowContext(ctx, query, token)
	if err := row.Scan(&session.ID, &session.Username, &session.Token,
		&session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return session, nil
}

// DeleteSession удаляет сессию по токену. Отсутствие строки не ошибка:
// операция идемпотентна.
func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	const op = "storage.DeleteSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := s.DB.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteExpiredSessions удаляет все сессии с истёкшим сроком действия
// и возвращает количество удалённых строк.
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const op = "storage.DeleteExpiredSessions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM sessions WHERE expires_at <= now()`
	result, err := s.DB.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
