package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/secure-social/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (сессия/лайк).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (дайджест сессии, пара post+user).
	ErrAlreadyExists = errors.New("already exists")
)

// SessionStorage выполняет операции над сессиями (дайджестами refresh-токенов).
//
// Требование атомарности: ConsumeSession обязан быть атомарным
// check-and-delete — из двух конкурентных попыток ротации одного и того же
// токена ровно одна получает removed=true.
type SessionStorage interface {
	// SaveSession сохраняет запись о выданном refresh-токене.
	// Возвращает ErrAlreadyExists при совпадении дайджеста.
	SaveSession(ctx context.Context, session *models.Session) error
	// SessionExists сообщает, есть ли живая запись с таким дайджестом.
	SessionExists(ctx context.Context, digest string) (bool, error)
	// ConsumeSession атомарно удаляет запись по дайджесту.
	// removed=false — записи не было (не выдавалась / уже использована).
	ConsumeSession(ctx context.Context, digest string) (bool, error)
	// DeleteSessionsByUser удаляет все сессии субъекта (массовая инвалидация).
	DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteExpiredSessions удаляет просроченные записи (гигиена, не корректность:
	// просроченный токен отклоняется проверкой exp до обращения к хранилищу).
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// InteractionStorage выполняет операции над лайками и просмотрами.
//
// Требование атомарности: SaveLike и SaveView опираются на ограничения
// уникальности в самом хранилище — двухшаговый exists-then-insert
// недопустим (TOCTOU-гонка двух конкурентных вставок одной пары).
type InteractionStorage interface {
	// SaveLike вставляет лайк; ErrAlreadyExists при повторе пары (post_id, user_id).
	SaveLike(ctx context.Context, like *models.Like) error
	// LikeByID находит лайк по идентификатору записи.
	LikeByID(ctx context.Context, id uuid.UUID) (*models.Like, error)
	// LikesByPost возвращает лайки поста (свежие первыми).
	LikesByPost(ctx context.Context, postID uuid.UUID) ([]models.Like, error)
	// CountLikes считает лайки поста по текущему состоянию хранилища.
	CountLikes(ctx context.Context, postID uuid.UUID) (int64, error)
	// SaveView вставляет просмотр, если пары (post_id, view_token) ещё нет.
	// inserted=false — просмотр дедуплицирован.
	SaveView(ctx context.Context, view *models.View) (bool, error)
	// CountViews считает уникальные просмотры поста.
	CountViews(ctx context.Context, postID uuid.UUID) (int64, error)
	// TouchLikeTimestamp переписывает liked_at БЕЗ переподписи.
	// Существует только ради демонстрации tamper-детекции (см. сервис
	// VerifyLikeIntegrity); боевой путь записи лайк не мутирует.
	TouchLikeTimestamp(ctx context.Context, id uuid.UUID, likedAt time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	SessionStorage
	InteractionStorage
	Close()
}
