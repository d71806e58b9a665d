package models

import (
	"time"

	"github.com/google/uuid"
)

// Like — лайк поста с криптографической подписью.
//
// Подпись (HMAC) вычисляется один раз при создании над тройкой
// (user_id, post_id, liked_at) и далее никогда не пересчитывается:
// любое изменение полей записи без переподписи делает её обнаружимо
// невалидной (tamper-evident, а не tamper-proof).
type Like struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Signature string
	// LikedAt — момент создания лайка (UTC, миллисекундная точность —
	// ровно та, что входит в подпись).
	LikedAt time.Time
}
