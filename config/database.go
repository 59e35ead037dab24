package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS members (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			membership_number VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			phone_code VARCHAR(10) NOT NULL DEFAULT '+229',
			phone VARCHAR(50) NOT NULL,
			birth_year INTEGER NOT NULL,
			country VARCHAR(100) NOT NULL DEFAULT 'Bénin',
			department VARCHAR(100),
			commune VARCHAR(100),
			city VARCHAR(100),
			profession VARCHAR(100) NOT NULL,
			availability VARCHAR(100) NOT NULL,
			motivation TEXT,
			photo TEXT,
			role VARCHAR(50) DEFAULT 'member',
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			member_id UUID REFERENCES members(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_members_email ON members(email)`,
		`CREATE INDEX IF NOT EXISTS idx_members_department ON members(department)`,
		`CREATE INDEX IF NOT EXISTS idx_members_created_at ON members(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_member_id ON sessions(member_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_refresh_token ON sessions(refresh_token)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
