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

// SaveLike вставляет лайк одним атомарным INSERT.
//
// Уникальность пары (post_id, user_id) обеспечивает ограничение
// uq_likes_post_user: повторная или конкурентная вставка той же пары
// возвращает ErrAlreadyExists без промежуточного exists-запроса.
func (s *Storage) SaveLike(ctx context.Context, like *models.Like) error {
	const op = "storage.postgres.SaveLike"

	query := `
        INSERT INTO likes(id, post_id, user_id, signature, liked_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := s.db.Exec(ctx, query,
		like.ID,
		like.PostID,
		like.UserID,
		like.Signature,
		like.LikedAt,
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

// LikeByID находит лайк по идентификатору записи.
func (s *Storage) LikeByID(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	const op = "storage.postgres.LikeByID"

	query := `
        SELECT id, post_id, user_id, signature, liked_at
        FROM likes
        WHERE id = $1
    `

	var like models.Like
	err := s.db.QueryRow(ctx, query, id).Scan(
		&like.ID,
		&like.PostID,
		&like.UserID,
		&like.Signature,
		&like.LikedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &like, nil
}

// LikesByPost возвращает лайки поста, свежие первыми.
func (s *Storage) LikesByPost(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	const op = "storage.postgres.LikesByPost"

	query := `
        SELECT id, post_id, user_id, signature, liked_at
        FROM likes
        WHERE post_id = $1
        ORDER BY liked_at DESC
    `

	rows, err := s.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var likes []models.Like
	for rows.Next() {
		var like models.Like
		if err := rows.Scan(&like.ID, &like.PostID, &like.UserID, &like.Signature, &like.LikedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		likes = append(likes, like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return likes, nil
}

// CountLikes считает лайки поста.
func (s *Storage) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "storage.postgres.CountLikes"

	query := `
        SELECT count(*)
        FROM likes
        WHERE post_id = $1
    `

	var n int64
	if err := s.db.QueryRow(ctx, query, postID).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// TouchLikeTimestamp переписывает liked_at без переподписи.
// Запись становится обнаружимо невалидной для VerifyLikeIntegrity.
func (s *Storage) TouchLikeTimestamp(ctx context.Context, id uuid.UUID, likedAt time.Time) error {
	const op = "storage.postgres.TouchLikeTimestamp"

	query := `
        UPDATE likes
        SET liked_at = $2
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, id, likedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
