package pg

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"forumapi/internal/config"
	"forumapi/internal/domain"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "forumapi"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("..", "..", "..", "migrations", "000001_init.up.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself after the first startup, so wait
			// until readiness is logged twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(&config.Config{Private: config.Private{Pg: config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName}}})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// --- Shared fixtures ---

func setupUser(t *testing.T, username string) domain.UserId {
	t.Helper()
	added, err := storage.SaveUser(domain.User{Username: username, Fullname: "Test User", PassHash: "hash"})
	if err != nil {
		t.Fatalf("failed to create user fixture: %s", err)
	}
	return added.Id
}

func setupThread(t *testing.T, owner domain.UserId) domain.ThreadId {
	t.Helper()
	added, err := storage.CreateThread(domain.ThreadCreationData{Title: "sebuah thread", Body: "sebuah body", Owner: owner})
	if err != nil {
		t.Fatalf("failed to create thread fixture: %s", err)
	}
	return added.Id
}

func setupComment(t *testing.T, threadId domain.ThreadId, owner domain.UserId) domain.CommentId {
	t.Helper()
	added, err := storage.CreateComment(domain.CommentCreationData{Content: "sebuah comment", ThreadId: threadId, Owner: owner})
	if err != nil {
		t.Fatalf("failed to create comment fixture: %s", err)
	}
	return added.Id
}
