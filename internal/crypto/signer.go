// crypto содержит чистые криптопримитивы trust-слоя:
//   - Signer — ключевая подпись (HMAC-SHA256) лайков;
//   - Anonymizer — односторонняя анонимизация просмотров.
//
// Оба примитива детерминированы, не делают I/O и безопасны для
// конкурентного использования: ключи загружаются один раз при старте
// и далее не изменяются. Ключи Signer и Anonymizer обязаны быть разными
// (компрометация одного не должна ослаблять другой).
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"hash"
	"time"

	"github.com/google/uuid"
)

// Signer вычисляет и проверяет подписи лайков.
//
// Подпись — HMAC-SHA256 над канонической кодировкой тройки
// (user_id, post_id, liked_at): каждое строковое поле пишется с префиксом
// длины (uint32, big-endian), время — как 8 байт unix-миллисекунд.
// Префиксы длины исключают неоднозначность конкатенации полей.
type Signer struct {
	key []byte
}

// NewSigner создаёт Signer с заданным секретом.
func NewSigner(secret string) *Signer {
	return &Signer{key: []byte(secret)}
}

// Sign возвращает подпись тройки (userID, postID, likedAt)
// в base64url без паддинга.
func (s *Signer) Sign(userID, postID uuid.UUID, likedAt time.Time) string {
	mac := hmac.New(sha256.New, s.key)
	writeField(mac, []byte(userID.String()))
	writeField(mac, []byte(postID.String()))
	writeMillis(mac, likedAt)

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify пересчитывает подпись по предъявленным полям и сравнивает её
// с переданной за константное время (hmac.Equal).
func (s *Signer) Verify(userID, postID uuid.UUID, likedAt time.Time, signature string) bool {
	got, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.key)
	writeField(mac, []byte(userID.String()))
	writeField(mac, []byte(postID.String()))
	writeMillis(mac, likedAt)

	return hmac.Equal(got, mac.Sum(nil))
}

// writeField пишет поле с префиксом длины uint32 (big-endian).
func writeField(h hash.Hash, b []byte) {
	var ln [4]byte
	binary.BigEndian.PutUint32(ln[:], uint32(len(b)))
	_, _ = h.Write(ln[:])
	_, _ = h.Write(b)
}

// writeMillis пишет unix-миллисекунды как 8 байт big-endian.
// Подпись привязана к миллисекундной точности: хранимое liked_at
// должно сохранять её при round-trip через БД.
func writeMillis(h hash.Hash, t time.Time) {
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(t.UnixMilli()))
	_, _ = h.Write(ts[:])
}
