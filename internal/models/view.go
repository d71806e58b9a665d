package models

import "github.com/google/uuid"

// View — анонимизированный просмотр поста.
//
// Идентификатор зрителя не сохраняется: вместо него хранится односторонний
// ключевой хэш пары (user_id, post_id). Повторные просмотры той же пары
// дают тот же токен и дедуплицируются ограничением уникальности
// (post_id, view_token).
type View struct {
	ID     uuid.UUID
	PostID uuid.UUID
	// ViewToken — HMAC(user_id, post_id) под отдельным ключом анонимизации.
	ViewToken string
}
