// transport/grpc содержит реализацию gRPC-эндпоинтов TrustService.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в gRPC.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - некорректный UUID в запросе -> codes.InvalidArgument;
//   - ErrInvalidToken/ErrTokenExpired/ErrWrongTokenType/ErrTokenReused -> codes.Unauthenticated;
//   - ErrAlreadyLiked -> codes.AlreadyExists;
//   - ErrLikeNotFound -> codes.NotFound;
//   - иные ошибки -> codes.Internal c единым безопасным сообщением;
//   - ValidateToken при невалидном/просроченном токене НЕ возвращает RPC-ошибку, а
//     отдаёт {Valid:false} (контракт эндпоинта).
//
// Безопасность:
//   - Для codes.Internal наружу не утекают детали внутренних ошибок; подробности должны попадать в логи
//     через интерсепторы на уровне сервера.
package grpc

import (
	"context"
	"errors"

	trustv1 "github.com/pribylovaa/secure-social/gen/go/trust"
	"github.com/pribylovaa/secure-social/internal/service"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TrustServer struct {
	trustv1.UnimplementedTrustServiceServer
	service *service.Service
}

// NewTrustServer создаёт gRPC-сервер trust-слоя поверх сервисного слоя.
func NewTrustServer(service *service.Service) *TrustServer {
	return &TrustServer{service: service}
}

// isAuthErr — токен-ошибки сервиса, транслируемые в Unauthenticated.
func isAuthErr(err error) bool {
	return errors.Is(err, service.ErrInvalidToken) ||
		errors.Is(err, service.ErrTokenExpired) ||
		errors.Is(err, service.ErrWrongTokenType) ||
		errors.Is(err, service.ErrTokenReused)
}

// Login выпускает первую пару токенов для уже аутентифицированного субъекта.
// Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - прочее -> Internal (без раскрытия деталей).
func (s *TrustServer) Login(ctx context.Context, req *trustv1.LoginRequest) (*trustv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/Login"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	tokenPair, err := s.service.Login(ctx, uid)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.TokenPairResponse{
		UserId:          uid.String(),
		AccessToken:     tokenPair.AccessToken,
		RefreshToken:    tokenPair.RefreshToken,
		AccessExpiresAt: tokenPair.AccessExpiresAt.Unix(),
	}, nil
}

// RefreshToken ротирует пару по одноразовому refresh-токену.
// Маппинг ошибок:
//   - ErrInvalidToken/ErrTokenExpired/ErrWrongTokenType/ErrTokenReused -> Unauthenticated;
//   - прочее -> Internal.
func (s *TrustServer) RefreshToken(ctx context.Context, req *trustv1.RefreshTokenRequest) (*trustv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/RefreshToken"

	tokenPair, uid, err := s.service.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		if isAuthErr(err) {
			return nil, status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.TokenPairResponse{
		UserId:          uid.String(),
		AccessToken:     tokenPair.AccessToken,
		RefreshToken:    tokenPair.RefreshToken,
		AccessExpiresAt: tokenPair.AccessExpiresAt.Unix(),
	}, nil
}

// RevokeToken отзывает refresh-токен (logout одной сессии).
// Маппинг ошибок:
//   - ErrInvalidToken/ErrTokenExpired/ErrWrongTokenType/ErrTokenReused -> Unauthenticated;
//   - прочее -> Internal.
func (s *TrustServer) RevokeToken(ctx context.Context, req *trustv1.RevokeTokenRequest) (*trustv1.RevokeTokenResponse, error) {
	const op = "transport/grpc/server/RevokeToken"

	if err := s.service.Revoke(ctx, req.GetRefreshToken()); err != nil {
		if isAuthErr(err) {
			return nil, status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.RevokeTokenResponse{Ok: true}, nil
}

// RevokeAllSessions инвалидирует все сессии субъекта.
// Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - прочее -> Internal.
func (s *TrustServer) RevokeAllSessions(ctx context.Context, req *trustv1.RevokeAllSessionsRequest) (*trustv1.RevokeAllSessionsResponse, error) {
	const op = "transport/grpc/server/RevokeAllSessions"

	uid, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	n, err := s.service.RevokeAll(ctx, uid)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.RevokeAllSessionsResponse{RevokedCount: n}, nil
}

// ValidateToken валидирует access-токен (JWT).
// Контракт: при невалидном/просроченном токене RPC-ошибку не возвращает —
// отдаёт {Valid:false}. При прочих ошибках — Internal.
func (s *TrustServer) ValidateToken(ctx context.Context, req *trustv1.ValidateTokenRequest) (*trustv1.ValidateTokenResponse, error) {
	uid, err := s.service.ValidateAccess(ctx, req.GetAccessToken())
	if err != nil {
		if isAuthErr(err) {
			return &trustv1.ValidateTokenResponse{Valid: false}, nil
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.ValidateTokenResponse{
		Valid:  true,
		UserId: uid.String(),
	}, nil
}

// LikePost ставит подписанный лайк поста.
// Маппинг ошибок:
//   - некорректный post_id/user_id -> InvalidArgument;
//   - ErrAlreadyLiked -> AlreadyExists;
//   - прочее -> Internal.
func (s *TrustServer) LikePost(ctx context.Context, req *trustv1.LikePostRequest) (*trustv1.LikePostResponse, error) {
	const op = "transport/grpc/server/LikePost"

	postID, err := uuid.Parse(req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid post_id", op)
	}

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	like, err := s.service.Like(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			return nil, status.Errorf(codes.AlreadyExists, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.LikePostResponse{
		LikeId:    like.ID.String(),
		LikedAtMs: like.LikedAt.UnixMilli(),
		Signature: like.Signature,
	}, nil
}

// ViewPost регистрирует анонимный просмотр поста.
// Повторный просмотр — не ошибка: дедупликация выполняется хранилищем.
func (s *TrustServer) ViewPost(ctx context.Context, req *trustv1.ViewPostRequest) (*trustv1.ViewPostResponse, error) {
	const op = "transport/grpc/server/ViewPost"

	postID, err := uuid.Parse(req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid post_id", op)
	}

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	if err := s.service.View(ctx, userID, postID); err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.ViewPostResponse{Ok: true}, nil
}

// PostStats возвращает счётчики лайков и уникальных просмотров поста.
func (s *TrustServer) PostStats(ctx context.Context, req *trustv1.PostStatsRequest) (*trustv1.PostStatsResponse, error) {
	const op = "transport/grpc/server/PostStats"

	postID, err := uuid.Parse(req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid post_id", op)
	}

	likes, err := s.service.LikeCount(ctx, postID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	views, err := s.service.ViewCount(ctx, postID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.PostStatsResponse{
		Likes: likes,
		Views: views,
	}, nil
}

// ListPostLikes возвращает записи лайков поста (свежие первыми).
func (s *TrustServer) ListPostLikes(ctx context.Context, req *trustv1.ListPostLikesRequest) (*trustv1.ListPostLikesResponse, error) {
	const op = "transport/grpc/server/ListPostLikes"

	postID, err := uuid.Parse(req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid post_id", op)
	}

	likes, err := s.service.LikesByPost(ctx, postID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	out := make([]*trustv1.Like, 0, len(likes))
	for _, l := range likes {
		out = append(out, &trustv1.Like{
			Id:        l.ID.String(),
			PostId:    l.PostID.String(),
			UserId:    l.UserID.String(),
			LikedAtMs: l.LikedAt.UnixMilli(),
			Signature: l.Signature,
		})
	}

	return &trustv1.ListPostLikesResponse{Likes: out}, nil
}

// VerifyLikeIntegrity пересчитывает подпись лайка по текущим полям записи.
// Несошедшаяся подпись или отсутствующая запись — {valid:false}, не ошибка.
func (s *TrustServer) VerifyLikeIntegrity(ctx context.Context, req *trustv1.VerifyLikeIntegrityRequest) (*trustv1.VerifyLikeIntegrityResponse, error) {
	const op = "transport/grpc/server/VerifyLikeIntegrity"

	likeID, err := uuid.Parse(req.GetLikeId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid like_id", op)
	}

	ok, err := s.service.VerifyLikeIntegrity(ctx, likeID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &trustv1.VerifyLikeIntegrityResponse{Valid: ok}, nil
}
