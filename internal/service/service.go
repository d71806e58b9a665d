// service содержит бизнес-логику trust-слоя secure-social:
// выпуск/проверку/ротацию токенов, подписанные лайки и анонимные
// просмотры, работу с хранилищем через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно. Секреты
//     (JWT, подпись, анонимизация) неизменяемы после старта.
//   - Ни одна из ошибок ниже не подлежит ретраю внутри ядра: каждая отражает
//     либо ожидаемое бизнес-состояние (ErrAlreadyLiked), либо security-сигнал,
//     который нельзя молча повторять (ErrTokenReused, ErrInvalidToken).
//   - Ошибки возвращаются и далее маппятся
//     транспортом на gRPC-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/secure-social/internal/cache"
	"github.com/pribylovaa/secure-social/internal/config"
	"github.com/pribylovaa/secure-social/internal/crypto"
	"github.com/pribylovaa/secure-social/internal/storage"
)

var (
	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи.
	// Логируется как потенциальный tamper-сигнал.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк; клиенту нужен
	// повторный логин (refresh) или обновление пары (access).
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrTokenExpired = errors.New("token expired")

	// ErrWrongTokenType — предъявлен токен не того типа (например, access
	// вместо refresh). Транспорт: codes.Unauthenticated (HTTP 401).
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrTokenReused — refresh-токен с валидной подписью и сроком
	// отсутствует в хранилище на момент потребления: он уже был использован
	// или никогда не выдавался. Трактуется как replay-попытка.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrTokenReused = errors.New("refresh token reused")

	// ErrAlreadyLiked — повторный лайк той же пары (пост, пользователь);
	// пользовательский конфликт, не сбой системы.
	// Транспорт: codes.AlreadyExists (HTTP 409).
	ErrAlreadyLiked = errors.New("already liked")

	// ErrLikeNotFound — лайк с таким идентификатором не найден.
	// Транспорт: codes.NotFound (HTTP 404).
	ErrLikeNotFound = errors.New("like not found")
)

// Service описывает бизнес-логику trust-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	signer  *crypto.Signer
	anon    *crypto.Anonymizer
	scache  cache.SessionCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
// Криптопримитивы инжектируются один раз при старте и далее неизменяемы.
func New(storage storage.Storage, cfg config.AuthConfig, signer *crypto.Signer, anon *crypto.Anonymizer) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		signer:  signer,
		anon:    anon,
	}
}

// SetSessionCache устанавливает кэш сессий (опционально).
func (s *Service) SetSessionCache(c cache.SessionCache) {
	s.scache = c
}
