package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/secure-social/internal/models"

	"github.com/google/uuid"
)

// SaveView вставляет просмотр с дедупликацией по (post_id, view_token).
//
// ON CONFLICT DO NOTHING делает вставку идемпотентной на уровне БД:
// повторный просмотр той же анонимизированной пары не создаёт строку
// и не является ошибкой.
func (s *Storage) SaveView(ctx context.Context, view *models.View) (bool, error) {
	const op = "storage.postgres.SaveView"

	query := `
        INSERT INTO views(id, post_id, view_token)
        VALUES ($1, $2, $3)
        ON CONFLICT (post_id, view_token) DO NOTHING
    `

	cmdTag, err := s.db.Exec(ctx, query,
		view.ID,
		view.PostID,
		view.ViewToken,
	)

	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// CountViews считает уникальные просмотры поста.
func (s *Storage) CountViews(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "storage.postgres.CountViews"

	query := `
        SELECT count(*)
        FROM views
        WHERE post_id = $1
    `

	var n int64
	if err := s.db.QueryRow(ctx, query, postID).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
