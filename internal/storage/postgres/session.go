package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/secure-social/internal/models"
	"github.com/pribylovaa/secure-social/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveSession сохраняет запись о выданном refresh-токене.
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	const op = "storage.postgres.SaveSession"

	query := `
        INSERT INTO sessions(token_digest, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4)
    `

	_, err := s.db.Exec(ctx, query,
		session.TokenDigest,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SessionExists сообщает, есть ли живая запись с таким дайджестом.
func (s *Storage) SessionExists(ctx context.Context, digest string) (bool, error) {
	const op = "storage.postgres.SessionExists"

	query := `
        SELECT 1
        FROM sessions
        WHERE token_digest = $1
    `

	var one int
	err := s.db.QueryRow(ctx, query, digest).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// ConsumeSession атомарно удаляет запись по дайджесту.
//
// Единственный DELETE с RETURNING: из конкурентных вызовов для одного
// дайджеста строку удалит ровно один, остальные получат removed=false.
// Это и есть точка обнаружения replay при ротации.
func (s *Storage) ConsumeSession(ctx context.Context, digest string) (bool, error) {
	const op = "storage.postgres.ConsumeSession"

	query := `
        DELETE FROM sessions
        WHERE token_digest = $1
        RETURNING user_id
    `

	var userID uuid.UUID
	err := s.db.QueryRow(ctx, query, digest).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// DeleteSessionsByUser удаляет все сессии субъекта.
func (s *Storage) DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage.postgres.DeleteSessionsByUser"

	query := `
        DELETE FROM sessions
        WHERE user_id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteExpiredSessions удаляет все просроченные записи.
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredSessions"

	query := `
        DELETE FROM sessions
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
