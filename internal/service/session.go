package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/secure-social/internal/cache"
	"github.com/pribylovaa/secure-social/internal/models"
	"github.com/pribylovaa/secure-social/internal/pkg/log"
	"github.com/pribylovaa/secure-social/internal/pkg/redact"

	"github.com/google/uuid"
)

// Login выпускает первую пару токенов для субъекта.
// Аутентификацию выполняет внешний identity-сервис: сюда приходит
// уже проверенный userID, поэтому логин — это issue-and-store без
// валидации и потребления.
func (s *Service) Login(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.session.Login"

	pair, err := s.issueTokenPair(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// Refresh ротирует пару токенов по refresh-токену.
//
// Порядок проверок — от дешёвых stateless к дорогим stateful:
//  1. подпись, typ и exp (без БД; отказ на битом входе не трогает хранилище);
//  2. best-effort отказ по кэшу (известный revoked-дайджест);
//  3. атомарное потребление дайджеста в БД — точка обнаружения replay:
//     повторное предъявление валидного токена отклоняется здесь;
//  4. выпуск и сохранение новой пары (ротация, не переиспользование).
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.session.Refresh"

	lg := log.From(ctx)

	userID, _, err := s.validateToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			lg.Warn("refresh_bad_signature",
				slog.String("op", op),
				slog.String("token", redact.Token()),
			)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	digest := tokenDigest(refreshToken)

	// Быстрый путь: кэш уже знает, что дайджест потреблён.
	if s.scache != nil {
		if e, ok, cerr := s.scache.Get(ctx, digest); cerr == nil && ok && e.Revoked {
			lg.Warn("refresh_replay_cached",
				slog.String("op", op),
				slog.String("digest", redact.Digest(digest)),
			)
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenReused)
		}
	}

	removed, err := s.storage.ConsumeSession(ctx, digest)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !removed {
		// Подпись и срок валидны, но записи нет: токен уже использован
		// (или вычищен). Для предъявителя случаи неразличимы.
		lg.Warn("refresh_replay_detected",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("digest", redact.Digest(digest)),
		)
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenReused)
	}

	s.markRevokedInCache(ctx, digest)

	pair, err := s.issueTokenPair(ctx, userID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, userID, nil
}

// Revoke отзывает refresh-токен (logout): потребляет дайджест без перевыпуска.
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	const op = "service.session.Revoke"

	userID, _, err := s.validateToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	digest := tokenDigest(refreshToken)

	removed, err := s.storage.ConsumeSession(ctx, digest)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !removed {
		return fmt.Errorf("%s: %w", op, ErrTokenReused)
	}

	s.markRevokedInCache(ctx, digest)

	log.From(ctx).Info("session_revoked",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return nil
}

// RevokeAll инвалидирует все сессии субъекта (компрометация аккаунта,
// смена пароля на стороне identity и т.п.). Возвращает число удалённых сессий.
// Кэш не трогаем: записи в нём не перечислимы по userID, а источником истины
// при ротации всё равно является БД — отсутствующая строка отклонит refresh.
func (s *Service) RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "service.session.RevokeAll"

	n, err := s.storage.DeleteSessionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("sessions_revoked_all",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)

	return n, nil
}

// ValidateAccess проверяет access-токен и возвращает субъекта.
// Stateless-проверка: БД не участвует, отозвать access до истечения
// нельзя — короткий TTL ограничивает окно экспозиции.
func (s *Service) ValidateAccess(ctx context.Context, accessToken string) (uuid.UUID, error) {
	const op = "service.session.ValidateAccess"

	userID, _, err := s.validateToken(accessToken, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

// issueTokenPair выпускает новую пару access+refresh и сохраняет сессию
// нового refresh-токена ДО возврата пары вызывающему.
func (s *Service) issueTokenPair(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.session.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.generateRefreshToken(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session := &models.Session{
		TokenDigest: tokenDigest(refreshToken),
		UserID:      userID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.RefreshTokenTTL),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Кэш — best-effort: его недоступность не ломает выдачу.
	if s.scache != nil {
		e := &cache.SessionEntry{UserID: userID, Revoked: false, ExpiresAt: session.ExpiresAt}
		if cerr := s.scache.Set(ctx, session.TokenDigest, e, s.cfg.RefreshTokenTTL); cerr != nil {
			log.From(ctx).Warn("session_cache_set_failed",
				slog.String("op", op),
				slog.String("err", cerr.Error()),
			)
		}
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

func (s *Service) markRevokedInCache(ctx context.Context, digest string) {
	if s.scache == nil {
		return
	}

	if err := s.scache.MarkRevoked(ctx, digest); err != nil {
		log.From(ctx).Warn("session_cache_revoke_failed",
			slog.String("err", err.Error()),
		)
	}
}
