//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestIntentctlWithMySQL runs the credential and journal stores against MySQL.
func TestIntentctlWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "intentctl",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/intentctl?parseTime=true", host, port.Port())
	runStoreCommands(t, "mysql", connStr)
}

// TestIntentctlWithPostgres runs the credential and journal stores against PostgreSQL.
func TestIntentctlWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runStoreCommands(t, "postgresql", connStr)
}

// runStoreCommands exercises the store-backed commands against one backend.
func runStoreCommands(t *testing.T, backend, connStr string) {
	t.Helper()
	env := []string{
		"HOME=" + t.TempDir(),
		"INTENTCTL_CRED_BACKEND=" + backend,
		"INTENTCTL_CRED_DB_CONNECT=" + connStr,
		"INTENTCTL_JOURNAL_BACKEND=" + backend,
		"INTENTCTL_JOURNAL_DB_CONNECT=" + connStr,
		"INTENTCTL_COLOR=no",
	}

	_, err := runIntentctl(t, env, "journal", "migrate")
	require.NoError(t, err)

	_, err = runIntentctl(t, env, "key", "clear")
	require.NoError(t, err)

	_, err = runIntentctl(t, env, "key", "status")
	require.NoError(t, err)

	_, err = runIntentctl(t, env, "journal", "status")
	require.NoError(t, err)

	_, err = runIntentctl(t, env, "journal", "clear")
	require.NoError(t, err)
}
