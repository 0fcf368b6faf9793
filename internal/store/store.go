// Package store persists the ledger graph to a local sqlite database. The
// whole graph is written in one transaction and reloaded in full at startup;
// there is no incremental persistence.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type Store struct {
	db  DBTX
	log zerolog.Logger
}

// NewStore opens (or creates) the database at dbPath and brings the schema up
// to date. A file that cannot be opened or migrated is treated as corrupt:
// it is moved aside to <path>.corrupt and a fresh database takes its place,
// so a damaged file never blocks startup.
func NewStore(dbPath string, migrationsFS fs.FS, log zerolog.Logger) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := openAndMigrate(dbPath, migrationsFS)
	if err != nil {
		log.Warn().Err(err).Str("path", dbPath).
			Msg("database unusable, starting over with an empty ledger")

		if mvErr := os.Rename(dbPath, dbPath+".corrupt"); mvErr != nil && !os.IsNotExist(mvErr) {
			return nil, fmt.Errorf("can not move corrupt database aside: %w", mvErr)
		}
		db, err = openAndMigrate(dbPath, migrationsFS)
		if err != nil {
			return nil, fmt.Errorf("can not recreate database: %w", err)
		}
	}

	return &Store{db: db, log: log}, nil
}

func openAndMigrate(dbPath string, migrationsFS fs.FS) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database: %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// ExecTx runs fn against a store bound to a single database transaction;
// any error rolls the whole thing back.
func (s *Store) ExecTx(fn func(*Store) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &Store{db: tx, log: s.log}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver: %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up): %w", err)
	}

	return nil
}
