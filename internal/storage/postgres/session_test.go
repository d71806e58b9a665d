package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pribylovaa/secure-social/internal/models"
	"github.com/pribylovaa/secure-social/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Файл интеграционных тестов для пакета postgres (репозиторий session.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations (1_init_sessions.up.sql);
// - проверяет одноразовость потребления дайджеста (в том числе под конкуренцией),
//   массовую инвалидацию и чистку просроченных записей.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет миграцию sessions и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_sessions.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// newSession — свежая сессия с дайджестом от seed-строки.
func newSession(userID uuid.UUID, digest string, ttl time.Duration) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		TokenDigest: digest,
		UserID:      userID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func TestIntegration_SaveSession_And_Exists_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, st.SaveSession(ctx, newSession(userID, "digest-1", time.Hour)))

	ok, err := st.SessionExists(ctx, "digest-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.SessionExists(ctx, "digest-absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIntegration_SaveSession_UniqueViolation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, st.SaveSession(ctx, newSession(uuid.New(), "dup-digest", time.Hour)))

	err := st.SaveSession(ctx, newSession(uuid.New(), "dup-digest", 2*time.Hour))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_ConsumeSession_OnlyOnce(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, st.SaveSession(ctx, newSession(uuid.New(), "consume-me", time.Hour)))

	// 1) Первая попытка забирает запись.
	removed, err := st.ConsumeSession(ctx, "consume-me")
	require.NoError(t, err)
	require.True(t, removed)

	// 2) Повтор — записи уже нет.
	removed, err = st.ConsumeSession(ctx, "consume-me")
	require.NoError(t, err)
	require.False(t, removed)

	// 3) Никогда не существовавший дайджест.
	removed, err = st.ConsumeSession(ctx, "never-issued")
	require.NoError(t, err)
	require.False(t, removed)
}

// TestIntegration_ConsumeSession_Concurrent_SingleWinner — потребление
// одного дайджеста из множества горутин: removed=true ровно у одной.
func TestIntegration_ConsumeSession_Concurrent_SingleWinner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	const workers = 16

	ctx := context.Background()
	require.NoError(t, st.SaveSession(ctx, newSession(uuid.New(), "contested", time.Hour)))

	var wg sync.WaitGroup
	var winners int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			removed, err := st.ConsumeSession(ctx, "contested")
			require.NoError(t, err)
			if removed {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), winners)
}

func TestIntegration_DeleteSessionsByUser_BulkInvalidation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	victim := uuid.New()
	other := uuid.New()

	require.NoError(t, st.SaveSession(ctx, newSession(victim, "victim-1", time.Hour)))
	require.NoError(t, st.SaveSession(ctx, newSession(victim, "victim-2", time.Hour)))
	require.NoError(t, st.SaveSession(ctx, newSession(other, "other-1", time.Hour)))

	n, err := st.DeleteSessionsByUser(ctx, victim)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	// Сессии victim исчезли, чужая осталась.
	ok, err := st.SessionExists(ctx, "victim-1")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SessionExists(ctx, "other-1")
	require.NoError(t, err)
	require.True(t, ok)

	// Повторная инвалидация — уже нечего удалять.
	n, err = st.DeleteSessionsByUser(ctx, victim)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestIntegration_DeleteExpiredSessions_DeletesOnlyExpired(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	// A — истекла в прошлом -> должна быть удалена.
	require.NoError(t, st.SaveSession(ctx, &models.Session{
		TokenDigest: "expired-past", UserID: userID,
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Minute),
	}))

	// B — expires_at == now -> должна быть удалена.
	require.NoError(t, st.SaveSession(ctx, &models.Session{
		TokenDigest: "expired-now", UserID: userID,
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now,
	}))

	// C — в будущем -> должна остаться.
	require.NoError(t, st.SaveSession(ctx, &models.Session{
		TokenDigest: "not-expired", UserID: userID,
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(30 * time.Minute),
	}))

	require.NoError(t, st.DeleteExpiredSessions(ctx, now))

	ok, err := st.SessionExists(ctx, "expired-past")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SessionExists(ctx, "expired-now")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SessionExists(ctx, "not-expired")
	require.NoError(t, err)
	require.True(t, ok)
}
