//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-test-process environment setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	router, cfg, app := buildE2EApp(pool, dbConfig)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return pool, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to get PostgreSQL container info")

	return postgresInfo
}

// ------------------------------------------------------------
// Database preparation
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// Each test process gets its own database
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := time.Duration(500+attempts*500) * time.Millisecond
			waitTime = min(waitTime, 3*time.Second)
			slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	// The container is removed automatically, but drop the database anyway so
	// long container reuse does not accumulate them
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		_, err = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
		if err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Almaty",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to database")
	require.NotNil(t, pool, "database pool is nil")

	err = applySchema(t, dbConfig)
	require.NoError(t, err, "failed to apply database schema")

	if gin.Mode() != gin.TestMode {
		slog.Info("database ready", "database", dbName)
	}
	return pool, dbConfig
}

func applySchema(t *testing.T, dbConfig config.DBConfig) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, _, err := db.Connect(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	file := filepath.Join("db", "schema.sql")

	// Resolve the schema path relative to possible working dirs (package dirs
	// during `go test`).
	var (
		sqlContent []byte
		readErr    error
	)
	candidates := []string{
		file, // repo root
		filepath.Join("..", file),
		filepath.Join("..", "..", file),
		filepath.Join("..", "..", "..", file),
	}
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			file = cand
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read schema file %s: %w", file, readErr)
	}

	if _, err = pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute schema %s: %w", file, err)
	}

	slog.Info("schema applied", "file", file)
	return nil
}

// ------------------------------------------------------------
// Application wiring for e2e tests
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dbConfig)
		}),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				return middleware.NewLogger(cfg.Log).GetSlogLogger()
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application produced no router")
	}

	return router, cfg, app
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	return testConfig
}

// ------------------------------------------------------------
// Container helpers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// starts the PostgreSQL container once and reuses it across suites
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_wal_size=512MB",
				"-c", "checkpoint_completion_target=0.9",
				"-c", "wal_buffers=16MB",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
				"-c", "log_duration=off",
				"-c", "log_lock_waits=off",
				"-c", "log_checkpoints=off",
				"-c", "autovacuum=on",
				"-c", "autovacuum_max_workers=2",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")

		// Manual cleanup in case ryuk is disabled
		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate PostgreSQL container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, router, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Router = router
	s.Config = cfg
	require.NotNil(t, db, "failed to set up database")
	require.NotEmpty(t, s.Config, "failed to load config")
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// Reset database state between subtests
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "failed to reset database state")
}
