package database

import (
	"errors"
	"fmt"

	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// Supported values for app.db.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported values for app.db.client.
const (
	ClientSQL  = "sql"
	ClientGorm = "gorm"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task TEXT NOT NULL,
		is_complete INTEGER NOT NULL DEFAULT 0,
		due_date TEXT
	)`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		task TEXT NOT NULL,
		is_complete BIGINT NOT NULL DEFAULT 0,
		due_date TEXT
	)`

// Config describes where the tasks table lives and which client talks to it.
type Config struct {
	Driver string
	Client string

	// Path is the database file used by the sqlite driver.
	Path string

	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// ConfigFromResource reads the app.db.* properties.
func ConfigFromResource() Config {
	return Config{
		Driver:   resource.GetString("app.db.driver"),
		Client:   resource.GetString("app.db.client"),
		Path:     resource.GetString("app.db.path"),
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
	}
}

// SQLiteConfig returns a sql client config for the database file at path.
func SQLiteConfig(path string) Config {
	return Config{Driver: DriverSQLite, Client: ClientSQL, Path: path}
}

// DSN builds the driver specific connection string.
func (cfg Config) DSN() (string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Path), nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
			cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.Schema), nil
	default:
		return "", errors.New(msg.GetMessage("db.unknown-driver", cfg.Driver))
	}
}

// SchemaDDL returns the CREATE TABLE statement for the tasks table.
func (cfg Config) SchemaDDL() (string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return "", errors.New(msg.GetMessage("db.unknown-driver", cfg.Driver))
	}
}
