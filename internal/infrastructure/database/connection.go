package database

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// Config holds the connection settings for either supported driver
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Database   string
	SQLitePath string
}

// Connection wraps a pooled *sql.DB together with the dialect it speaks.
// sql.DB is already safe for concurrent use; no extra locking is added here.
type Connection struct {
	db      *sql.DB
	dialect string
}

var tlsOnce sync.Once // TLS config may only be registered once per process

// Open creates a new connection and verifies it with a ping
func Open(ctx context.Context, cfg Config) (*Connection, error) {
	switch cfg.Driver {
	case constants.DriverMySQL:
		return openMySQL(ctx, cfg)
	case constants.DriverSQLite, "":
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// openMySQL connects to MySQL or TiDB
func openMySQL(ctx context.Context, cfg Config) (*Connection, error) {
	port := cfg.Port
	if port == "" {
		port = "4000"
	}

	tlsParam := ""
	if cfg.Host != "" && cfg.Host != "127.0.0.1" && cfg.Host != "localhost" {
		// Remote host (e.g., TiDB Cloud) needs TLS with ServerName set
		tlsOnce.Do(func() {
			if err := mysql.RegisterTLSConfig("forms", &tls.Config{
				MinVersion: tls.VersionTLS12,
				ServerName: cfg.Host,
			}); err != nil {
				log.Printf("Failed to register TLS config: %v\n", err)
			}
		})
		tlsParam = "&tls=forms"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true%s",
		cfg.User, cfg.Password, cfg.Host, port, cfg.Database, tlsParam)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// MaxIdleConns == MaxOpenConns keeps connections alive and avoids port exhaustion
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(50)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db, dialect: constants.DriverMySQL}, nil
}

// OpenSQLite opens (and creates if needed) an embedded SQLite database file
func OpenSQLite(ctx context.Context, path string) (*Connection, error) {
	if path == "" {
		path = "data/dynamic_forms.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection also keeps pragmas consistent
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db, dialect: constants.DriverSQLite}, nil
}

// NewConnection wraps an already opened *sql.DB (used by tests with sqlmock)
func NewConnection(db *sql.DB, dialect string) *Connection {
	return &Connection{db: db, dialect: dialect}
}

// Dialect returns the driver name the connection speaks
func (c *Connection) Dialect() string {
	return c.dialect
}

// BeginTx starts a new transaction with context
func (c *Connection) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, opts)
}

// DB returns the underlying *sql.DB connection
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Ping checks that the database is reachable
func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.db.Close()
}
