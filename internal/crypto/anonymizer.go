package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/google/uuid"
)

// Anonymizer строит анонимные токены просмотров.
//
// Токен — HMAC-SHA256 над парой (user_id, post_id) под отдельным ключом:
// одна и та же пара всегда даёт один и тот же токен (это нужно для
// дедупликации), но восстановить user_id из токена вычислительно
// невозможно — идентичность зрителя не сохраняется.
type Anonymizer struct {
	key []byte
}

// NewAnonymizer создаёт Anonymizer с заданным секретом.
// Секрет обязан отличаться от секрета Signer.
func NewAnonymizer(secret string) *Anonymizer {
	return &Anonymizer{key: []byte(secret)}
}

// Token возвращает анонимный токен просмотра в base64url без паддинга.
func (a *Anonymizer) Token(userID, postID uuid.UUID) string {
	mac := hmac.New(sha256.New, a.key)
	writeField(mac, []byte(userID.String()))
	writeField(mac, []byte(postID.String()))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
