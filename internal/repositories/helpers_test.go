package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/motiv8-batch/internal/database"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{SQLitePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db))

	t.Cleanup(func() { db.Close() })
	return db
}

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	cfg := database.Config{
		PostgresHost:     host,
		PostgresPort:     port.Port(),
		PostgresUser:     "postgres",
		PostgresPassword: "password",
		PostgresDB:       "testdb",
	}

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = database.Open(ctx, cfg)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

type seedUser struct {
	email     string
	selfie    *string
	embedding *string
	gender    *string
	schedule  models.WeeklySchedule
	mode      *string
}

func insertUser(t *testing.T, db *sqlx.DB, u seedUser) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if u.schedule == nil {
		u.schedule = models.DefaultWeeklySchedule()
	}

	query := db.Rebind(`
		INSERT INTO users (id, email, selfie_filename, selfie_embedding_filename, gender, workout_days, mode, anti_motivation_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := db.Exec(query, id, u.email, u.selfie, u.embedding, u.gender, u.schedule, u.mode, false)
	require.NoError(t, err, fmt.Sprintf("insert user %s", u.email))

	return id
}

func strPtr(s string) *string { return &s }
