package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/nickstore/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "nickstore"
	containerUser     = "nickstore"
	containerPassword = "nickstore-test"
)

// DatabaseContainer is a disposable catalog database running in Docker
type DatabaseContainer struct {
	Config    *config.Config
	Container testcontainers.Container
}

// Terminate stops the container. t may be nil outside of tests.
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	if dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate %s: %v", dc.Config.DBType, err)
	}
}

// StartDatabase starts a database container for dbType ("postgres" or
// "mariadb") and returns a Config pointing at it. POSTGRES_IMAGE and
// MARIADB_IMAGE override the default images. t may be nil when run from a command.
func StartDatabase(ctx context.Context, t *testing.T, dbType string) (*DatabaseContainer, error) {
	switch dbType {
	case "postgres":
		return startPostgres(ctx, t)
	case "mysql", "mariadb":
		return startMariaDB(ctx, t)
	}
	return nil, fmt.Errorf("no container available for database type %s", dbType)
}

func startPostgres(ctx context.Context, t *testing.T) (*DatabaseContainer, error) {
	pgContainer, err := postgres.Run(ctx,
		imageFor("POSTGRES_IMAGE", "postgres:16-alpine"),
		postgres.WithDatabase(containerDatabase),
		postgres.WithUsername(containerUser),
		postgres.WithPassword(containerPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "TimeZone=UTC")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get postgres connection string: %w", err)
	}

	logMessage(t, "Postgres testcontainer started")
	return &DatabaseContainer{
		Config:    containerConfig("postgres", dsn, "", ""),
		Container: pgContainer,
	}, nil
}

func startMariaDB(ctx context.Context, t *testing.T) (*DatabaseContainer, error) {
	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create mariadb port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageFor("MARIADB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": containerPassword,
				"MARIADB_DATABASE":      containerDatabase,
				"MARIADB_USER":          containerUser,
				"MARIADB_PASSWORD":      containerPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mariadb: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mariadb host: %w", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mariadb port: %w", err)
	}

	logMessage(t, "MariaDB testcontainer started at %s:%s", host, port.Port())
	return &DatabaseContainer{
		Config:    containerConfig("mariadb", "", host, port.Port()),
		Container: container,
	}, nil
}

func containerConfig(dbType, dsn, host, port string) *config.Config {
	return &config.Config{
		DBType:              dbType,
		DatabaseURL:         dsn,
		DBHost:              host,
		DBPort:              port,
		DBDatabase:          containerDatabase,
		DBUser:              containerUser,
		DBPassword:          containerPassword,
		DBConnectionLimit:   5,
		DBLogLevel:          "silent",
		DefaultFacebookLink: config.DefaultFacebookLink,
	}
}

func imageFor(key, fallback string) string {
	if image := os.Getenv(key); image != "" {
		return image
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
