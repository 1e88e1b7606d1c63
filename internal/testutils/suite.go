package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"crm-workspace-backend/internal/config"
	"crm-workspace-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// One Postgres container serves every suite in the test binary
var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	sharedDB   *gorm.DB
	sharedCfg  *config.Config
)

// BaseTestSuite hands integration suites a migrated database and a matching config.
// Tables are truncated before and after every test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() { pgInitErr = startPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", pgInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedCfg}
}

// CleanupSharedContainer closes the database and purges the container. Call it from TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pgPool != nil && pgResource != nil {
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge postgres resource: %v", err)
		}
		pgResource = nil
		pgPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container lives until CleanupSharedContainer
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table, soft-deleted rows included
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}

	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			log.Printf("WARN: could not resolve table for %T: %v", model, err)
			continue
		}
		tables = append(tables, `"`+stmt.Schema.Table+`"`)
	}
	if len(tables) == 0 {
		return
	}

	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = db

	sharedCfg = &config.Config{
		DatabaseURL:             dsn,
		Port:                    "8080",
		LogLevel:                "debug",
		Environment:             "test",
		EventsStream:            "workspace-events-test",
		UserDeletionConcurrency: 4,
		MemberPurgeRetention:    time.Hour,
		ShutdownTimeout:         time.Second,
	}

	log.Printf("Shared Postgres ready at %s", resource.GetHostPort("5432/tcp"))
	return nil
}

func pingPostgres(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return conn.Ping(ctx)
}
