package models

import (
	"time"

	"github.com/google/uuid"
)

// Session — серверная запись о выданном refresh-токене.
//
// Хранится не сам токен, а его SHA-256 дайджест (base64url без паддинга):
// утечка содержимого хранилища не позволяет подделать или предъявить токен.
// Запись создаётся при выдаче (логин/ротация) и удаляется ровно один раз
// при успешной ротации. Отсутствие дайджеста в хранилище означает
// «не выдавался / уже использован / вычищен» — все три случая для
// предъявителя неразличимы и отклоняются одинаково.
type Session struct {
	// TokenDigest — SHA-256 от wire-формы refresh-токена (base64url).
	TokenDigest string
	// UserID — субъект, которому выдан токен.
	UserID uuid.UUID
	// CreatedAt — момент выдачи (UTC).
	CreatedAt time.Time
	// ExpiresAt — момент истечения refresh-токена (UTC).
	ExpiresAt time.Time
}
