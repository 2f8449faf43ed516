package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/linskybing/workflow-go/internal/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgres returns a migrated database for repository tests. It uses
// TEST_DB_DSN when set and otherwise starts a disposable postgres container.
// The returned cleanup is never nil.
func SetupPostgres(ctx context.Context) (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := openGorm(dsn)
		if err != nil {
			return nil, func() {}, err
		}
		if err := migrations.Run(db); err != nil {
			return nil, func() {}, err
		}
		return db, func() { closeGorm(db) }, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "workflow",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("start postgres container: %w", err)
	}
	terminate := func() {
		if err := pg.Terminate(context.Background()); err != nil {
			log.Printf("[Test] WARN terminate postgres container: %v", err)
		}
	}

	host, err := pg.Host(ctx)
	if err != nil {
		terminate()
		return nil, func() {}, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, func() {}, err
	}
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/workflow?sslmode=disable", host, port.Port())

	// the container may accept connections a moment after the log line
	var db *gorm.DB
	for i := 0; i < 10; i++ {
		if db, err = openGorm(dsn); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		terminate()
		return nil, func() {}, err
	}

	if err := migrations.Run(db); err != nil {
		closeGorm(db)
		terminate()
		return nil, func() {}, err
	}

	return db, func() {
		closeGorm(db)
		terminate()
	}, nil
}

// TruncateAll empties every table owned by the service.
func TruncateAll(db *gorm.DB, models ...any) error {
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return err
		}
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %q RESTART IDENTITY CASCADE", stmt.Schema.Table)).Error; err != nil {
			return err
		}
	}
	return nil
}

func openGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
