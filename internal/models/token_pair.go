package models

import "time"

// TokenPair — пара токенов, выдаваемая при логине и при ротации сессии.
//
// Описание:
//   - AccessToken — короткоживущий JWT (typ=access) для доступа к API;
//   - RefreshToken — долгоживущий JWT (typ=refresh); клиент предъявляет его
//     ровно один раз для выпуска новой пары; на сервере хранится только
//     его SHA-256 дайджест (см. models.Session);
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	// AccessToken — JWT для авторизации запросов.
	AccessToken string
	// RefreshToken — JWT для однократного обновления пары.
	RefreshToken string
	// AccessExpiresAt — время истечения действия access-токена (UTC).
	AccessExpiresAt time.Time
}
