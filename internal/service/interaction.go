package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/secure-social/internal/models"
	"github.com/pribylovaa/secure-social/internal/pkg/log"
	"github.com/pribylovaa/secure-social/internal/storage"

	"github.com/google/uuid"
)

// Like ставит лайк поста от имени пользователя.
//
// Подпись вычисляется над (userID, postID, likedAt) в момент создания и
// больше никогда не пересчитывается. Уникальность пары (пост, пользователь)
// обеспечивает сама вставка (ограничение в БД), без предварительного
// exists-запроса: конкурентный повтор той же пары отдаёт ErrAlreadyLiked.
func (s *Service) Like(ctx context.Context, userID, postID uuid.UUID) (*models.Like, error) {
	const op = "service.interaction.Like"

	// Миллисекундная точность: ровно она входит в подпись и переживает
	// round-trip через timestamptz.
	likedAt := time.Now().UTC().Truncate(time.Millisecond)

	like := &models.Like{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Signature: s.signer.Sign(userID, postID, likedAt),
		LikedAt:   likedAt,
	}

	if err := s.storage.SaveLike(ctx, like); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyLiked)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return like, nil
}

// View регистрирует анонимный просмотр поста.
//
// Идентичность зрителя не сохраняется: в БД попадает только
// анонимизированный токен пары. Повторный просмотр дедуплицируется
// вставкой-если-отсутствует; для вызывающего операция fire-and-forget.
func (s *Service) View(ctx context.Context, userID, postID uuid.UUID) error {
	const op = "service.interaction.View"

	view := &models.View{
		ID:        uuid.New(),
		PostID:    postID,
		ViewToken: s.anon.Token(userID, postID),
	}

	if _, err := s.storage.SaveView(ctx, view); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VerifyLikeIntegrity пересчитывает подпись по текущим полям записи
// и сравнивает с сохранённой.
//
// false — запись не найдена либо любое из полей (актор, пост, время)
// менялось независимо от подписи. Это результат детекции, не ошибка:
// система не чинит и не переподписывает запись.
func (s *Service) VerifyLikeIntegrity(ctx context.Context, likeID uuid.UUID) (bool, error) {
	const op = "service.interaction.VerifyLikeIntegrity"

	like, err := s.storage.LikeByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	ok := s.signer.Verify(like.UserID, like.PostID, like.LikedAt, like.Signature)
	if !ok {
		log.From(ctx).Warn("like_integrity_violation",
			slog.String("op", op),
			slog.String("like_id", likeID.String()),
			slog.String("post_id", like.PostID.String()),
		)
	}

	return ok, nil
}

// LikeCount возвращает число лайков поста по текущему состоянию
// хранилища (без кэширования).
func (s *Service) LikeCount(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "service.interaction.LikeCount"

	n, err := s.storage.CountLikes(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// ViewCount возвращает число уникальных просмотров поста.
func (s *Service) ViewCount(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "service.interaction.ViewCount"

	n, err := s.storage.CountViews(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// LikesByPost возвращает записи лайков поста (свежие первыми).
// Резолв имён авторов — забота внешнего сервиса профилей.
func (s *Service) LikesByPost(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	const op = "service.interaction.LikesByPost"

	likes, err := s.storage.LikesByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return likes, nil
}
