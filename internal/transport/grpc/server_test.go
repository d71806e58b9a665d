package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	trustv1 "github.com/pribylovaa/secure-social/gen/go/trust"
	"github.com/pribylovaa/secure-social/internal/config"
	"github.com/pribylovaa/secure-social/internal/crypto"
	"github.com/pribylovaa/secure-social/internal/models"
	"github.com/pribylovaa/secure-social/internal/service"
	"github.com/pribylovaa/secure-social/internal/storage"
	"github.com/pribylovaa/secure-social/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Файл unit-тестов транспортного слоя (gRPC) для TrustService.
// Все тесты изолированы: для каждого создаётся отдельный bufconn-сервер.

// testCfg — минимальная конфигурация сервиса для тестов транспорта.
func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		Issuer:          "trust-service",
		Audience:        []string{"api-gateway"},
		AccessTokenTTL:  2 * time.Second,
		RefreshTokenTTL: 1 * time.Minute,
	}
}

// newSvcWithMock — фабрика сервисного слоя с gomock-хранилищем.
func newSvcWithMock(t *testing.T) (*service.Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := service.New(st, testCfg(), crypto.NewSigner("like-unit-secret"), crypto.NewAnonymizer("anon-unit-secret"))
	return svc, st, ctrl
}

// startGRPC — поднимает bufconn-gRPC-сервер с переданным сервисом
// и возвращает клиент и функцию очистки.
func startGRPC(t *testing.T, svc *service.Service) (trustv1.TrustServiceClient, func()) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	trustv1.RegisterTrustServiceServer(s, NewTrustServer(svc))

	go func() { _ = s.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }

	cc, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	cleanup := func() { _ = cc.Close(); s.Stop() }
	return trustv1.NewTrustServiceClient(cc), cleanup
}

// TestLogin_OK — happy-path логина: возвращается корректная пара токенов.
func TestLogin_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := client.Login(context.Background(), &trustv1.LoginRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.Equal(t, uid.String(), resp.UserId)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Greater(t, resp.AccessExpiresAt, time.Now().Unix()-1)
}

// TestLogin_InvalidArgument_And_Internal — невалидный user_id -> InvalidArgument,
// ошибка хранилища -> Internal.
func TestLogin_InvalidArgument_And_Internal(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	_, err := client.Login(context.Background(), &trustv1.LoginRequest{UserId: "not-a-uuid"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	_, err = client.Login(context.Background(), &trustv1.LoginRequest{UserId: uuid.NewString()})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestRefreshToken_OK — валидный refresh и успешная ротация -> новая пара токенов.
func TestRefreshToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	login, err := client.Login(ctx, &trustv1.LoginRequest{UserId: uid.String()})
	require.NoError(t, err)

	// rotation: атомарное потребление старого дайджеста + сохранение нового.
	st.EXPECT().ConsumeSession(gomock.Any(), gomock.Any()).Return(true, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := client.RefreshToken(ctx, &trustv1.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	require.Equal(t, uid.String(), resp.UserId)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.NotEqual(t, login.RefreshToken, resp.RefreshToken)
}

// TestRefreshToken_Unauthenticated — невалидный/повторно предъявленный
// refresh -> Unauthenticated.
func TestRefreshToken_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()

	// Мусор вместо токена.
	_, err := client.RefreshToken(ctx, &trustv1.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	// Replay: подпись валидна, но запись уже потреблена.
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	login, err := client.Login(ctx, &trustv1.LoginRequest{UserId: uuid.NewString()})
	require.NoError(t, err)

	st.EXPECT().ConsumeSession(gomock.Any(), gomock.Any()).Return(false, nil)
	_, err = client.RefreshToken(ctx, &trustv1.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

// TestRefreshToken_Internal — ошибка хранилища при потреблении -> Internal.
func TestRefreshToken_Internal(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	login, err := client.Login(ctx, &trustv1.LoginRequest{UserId: uuid.NewString()})
	require.NoError(t, err)

	st.EXPECT().ConsumeSession(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
	_, err = client.RefreshToken(ctx, &trustv1.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestRevokeToken_OK_And_Unauthenticated — маппинг ошибок revoke.
func TestRevokeToken_OK_And_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	login, err := client.Login(ctx, &trustv1.LoginRequest{UserId: uuid.NewString()})
	require.NoError(t, err)

	// OK.
	st.EXPECT().ConsumeSession(gomock.Any(), gomock.Any()).Return(true, nil)
	okResp, err := client.RevokeToken(ctx, &trustv1.RevokeTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	require.True(t, okResp.Ok)

	// Повторный revoke того же токена -> Unauthenticated.
	st.EXPECT().ConsumeSession(gomock.Any(), gomock.Any()).Return(false, nil)
	_, err = client.RevokeToken(ctx, &trustv1.RevokeTokenRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

// TestRevokeAllSessions_OK_And_InvalidArgument — массовая инвалидация.
func TestRevokeAllSessions_OK_And_InvalidArgument(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().DeleteSessionsByUser(gomock.Any(), uid).Return(int64(2), nil)

	resp, err := client.RevokeAllSessions(context.Background(), &trustv1.RevokeAllSessionsRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.RevokedCount)

	_, err = client.RevokeAllSessions(context.Background(), &trustv1.RevokeAllSessionsRequest{UserId: "bad"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestValidateToken_Valid_And_Invalid_NoRPCErr — контракт ValidateToken:
// при невалидном/просроченном токене RPC-ошибка не возвращается, только {Valid:false}.
func TestValidateToken_Valid_And_Invalid_NoRPCErr(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	login, err := client.Login(ctx, &trustv1.LoginRequest{UserId: uid.String()})
	require.NoError(t, err)

	// 1) Валидный access -> Valid=true, без RPC-ошибки.
	okResp, err := client.ValidateToken(ctx, &trustv1.ValidateTokenRequest{AccessToken: login.AccessToken})
	require.NoError(t, err)
	require.True(t, okResp.Valid)
	require.Equal(t, uid.String(), okResp.UserId)

	// 2) Невалидный мусор -> Valid=false, без RPC-ошибки.
	badResp, err := client.ValidateToken(ctx, &trustv1.ValidateTokenRequest{AccessToken: "not-a-jwt"})
	require.NoError(t, err)
	require.False(t, badResp.Valid)

	// 3) Refresh вместо access -> Valid=false, без RPC-ошибки.
	wrongResp, err := client.ValidateToken(ctx, &trustv1.ValidateTokenRequest{AccessToken: login.RefreshToken})
	require.NoError(t, err)
	require.False(t, wrongResp.Valid)
}

// TestLikePost_OK_And_AlreadyExists — лайк и конфликт повторного лайка.
func TestLikePost_OK_And_AlreadyExists(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	st.EXPECT().SaveLike(gomock.Any(), gomock.Any()).Return(nil)
	resp, err := client.LikePost(ctx, &trustv1.LikePostRequest{
		PostId: postID.String(), UserId: userID.String(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.LikeId)
	require.NotEmpty(t, resp.Signature)
	require.Greater(t, resp.LikedAtMs, int64(0))

	st.EXPECT().SaveLike(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	_, err = client.LikePost(ctx, &trustv1.LikePostRequest{
		PostId: postID.String(), UserId: userID.String(),
	})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

// TestLikePost_InvalidArgument — некорректные идентификаторы.
func TestLikePost_InvalidArgument(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	_, err := client.LikePost(context.Background(), &trustv1.LikePostRequest{
		PostId: "bad", UserId: uuid.NewString(),
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.LikePost(context.Background(), &trustv1.LikePostRequest{
		PostId: uuid.NewString(), UserId: "bad",
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestViewPost_OK_DuplicateIsOK — просмотр и его дедупликация не различимы
// для клиента: оба — успех.
func TestViewPost_OK_DuplicateIsOK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	req := &trustv1.ViewPostRequest{PostId: uuid.NewString(), UserId: uuid.NewString()}

	st.EXPECT().SaveView(gomock.Any(), gomock.Any()).Return(true, nil)
	resp, err := client.ViewPost(ctx, req)
	require.NoError(t, err)
	require.True(t, resp.Ok)

	st.EXPECT().SaveView(gomock.Any(), gomock.Any()).Return(false, nil)
	resp, err = client.ViewPost(ctx, req)
	require.NoError(t, err)
	require.True(t, resp.Ok)
}

// TestPostStats_OK — счётчики лайков и просмотров.
func TestPostStats_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	postID := uuid.New()
	st.EXPECT().CountLikes(gomock.Any(), postID).Return(int64(5), nil)
	st.EXPECT().CountViews(gomock.Any(), postID).Return(int64(11), nil)

	resp, err := client.PostStats(context.Background(), &trustv1.PostStatsRequest{PostId: postID.String()})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.Likes)
	require.Equal(t, int64(11), resp.Views)
}

// TestListPostLikes_OK — выдача записей лайков.
func TestListPostLikes_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	postID := uuid.New()
	likes := []models.Like{
		{ID: uuid.New(), PostID: postID, UserID: uuid.New(), Signature: "sig-1", LikedAt: time.Now().UTC()},
		{ID: uuid.New(), PostID: postID, UserID: uuid.New(), Signature: "sig-2", LikedAt: time.Now().UTC()},
	}
	st.EXPECT().LikesByPost(gomock.Any(), postID).Return(likes, nil)

	resp, err := client.ListPostLikes(context.Background(), &trustv1.ListPostLikesRequest{PostId: postID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Likes, 2)
	require.Equal(t, likes[0].ID.String(), resp.Likes[0].Id)
	require.Equal(t, "sig-1", resp.Likes[0].Signature)
}

// TestVerifyLikeIntegrity_Contract — несошедшаяся подпись и отсутствующая
// запись -> {valid:false} без RPC-ошибки; внутренняя ошибка -> Internal.
func TestVerifyLikeIntegrity_Contract(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	likeID := uuid.New()

	// Запись не найдена -> valid=false.
	st.EXPECT().LikeByID(gomock.Any(), likeID).Return(nil, storage.ErrNotFound)
	resp, err := client.VerifyLikeIntegrity(ctx, &trustv1.VerifyLikeIntegrityRequest{LikeId: likeID.String()})
	require.NoError(t, err)
	require.False(t, resp.Valid)

	// Подпись не сходится (подменённое время) -> valid=false.
	tampered := &models.Like{
		ID:        likeID,
		PostID:    uuid.New(),
		UserID:    uuid.New(),
		Signature: "forged",
		LikedAt:   time.Now().UTC(),
	}
	st.EXPECT().LikeByID(gomock.Any(), likeID).Return(tampered, nil)
	resp, err = client.VerifyLikeIntegrity(ctx, &trustv1.VerifyLikeIntegrityRequest{LikeId: likeID.String()})
	require.NoError(t, err)
	require.False(t, resp.Valid)

	// Ошибка хранилища -> Internal.
	st.EXPECT().LikeByID(gomock.Any(), likeID).Return(nil, errors.New("db down"))
	_, err = client.VerifyLikeIntegrity(ctx, &trustv1.VerifyLikeIntegrityRequest{LikeId: likeID.String()})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}
