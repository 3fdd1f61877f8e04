package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/flashdeck/internal/logger"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options describes how to reach the row store.
type Options struct {
	Driver string
	Path   string // sqlite file
	URL    string // hosted endpoint
	Key    string // hosted access key
	Table  string
}

type DB struct {
	*sql.DB
	Dialect Dialect
	Table   string
	log     *logger.Logger
}

func Open(opts Options) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	dialect, err := ParseDialect(opts.Driver)
	if err != nil {
		return nil, err
	}
	if !identifierRe.MatchString(opts.Table) {
		return nil, fmt.Errorf("invalid table name %q", opts.Table)
	}

	var dsn string
	switch dialect {
	case Postgres:
		dsn, err = postgresDSN(opts.URL, opts.Key)
		if err != nil {
			return nil, err
		}
		log.Info("opening hosted row store: driver=%s table=%s", dialect, opts.Table)
	default:
		dsn = sqliteDSN(opts.Path)
		log.Info("opening database: %s", opts.Path)
	}

	sqlDB, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	configureConnection(sqlDB, dialect)

	db := &DB{DB: sqlDB, Dialect: dialect, Table: opts.Table, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error("failed to reach database: %v", err)
		sqlDB.Close()
		return nil, err
	}

	// The hosted table is owned by the hosting project; only the embedded
	// store creates its own table.
	if dialect == SQLite {
		log.Debug("ensuring table %s exists", opts.Table)
		if err := EnsureSchema(ctx, sqlDB, opts.Table); err != nil {
			log.Error("failed to create table: %v", err)
			sqlDB.Close()
			return nil, err
		}
	}

	log.Info("database ready")
	return db, nil
}

func configureConnection(sqlDB *sql.DB, dialect Dialect) {
	switch dialect {
	case Postgres:
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(time.Minute)
	default:
		sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer
	}
}

// EnsureSchema creates the flashcards table in an SQLite database when it
// is missing. It never alters an existing table.
func EnsureSchema(ctx context.Context, conn *sql.DB, table string) error {
	if !identifierRe.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	b, err := schemaFS.ReadFile("schema/sqlite.sql")
	if err != nil {
		return err
	}
	stmt := strings.ReplaceAll(string(b), "{{table}}", table)
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}
