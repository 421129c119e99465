package db

import (
	"database/sql"
	"fmt"

	"newsdesk/internal/config"
)

// MigrateUp creates the newsroom schema. Articles deliberately carry no
// foreign keys to categories, departments or users: deleting a catalog
// entry or an author must leave existing articles in place, and the read
// path resolves (or drops) the dangling references instead.
func MigrateUp(conn *sql.DB) error {
	if _, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE
)`); err != nil {
		return err
	}

	if _, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS departments (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE
)`); err != nil {
		return err
	}

	if _, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password      TEXT NOT NULL,
    name          TEXT NOT NULL,
    role          VARCHAR(20) NOT NULL DEFAULT 'editor',
    department_id INTEGER,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id            SERIAL PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    summary       TEXT NOT NULL,
    image_url     TEXT,
    category_id   INTEGER NOT NULL,
    department_id INTEGER,
    author_id     INTEGER NOT NULL,
    is_breaking   BOOLEAN NOT NULL DEFAULT FALSE,
    breaking_text TEXT,
    is_published  BOOLEAN NOT NULL DEFAULT FALSE,
    published_at  TIMESTAMPTZ,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// newest-first admin listing
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// public feed, ordered by publication time
		`CREATE INDEX IF NOT EXISTS idx_articles_published
    ON articles((COALESCE(published_at, created_at)) DESC) WHERE is_published`,
		// breaking ticker lookup
		`CREATE INDEX IF NOT EXISTS idx_articles_breaking
    ON articles((COALESCE(published_at, created_at)) DESC) WHERE is_breaking AND is_published`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
	}
	for _, idx := range indexes {
		if _, err := conn.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// Seed inserts the initial admin account and the category and department
// catalogs. Inserts are keyed on the unique columns, so running Seed
// against an already seeded database is a no-op.
func Seed(conn *sql.DB, cfg config.SeedConfig) error {
	if _, err := conn.Exec(`
INSERT INTO users (email, password, name, role)
VALUES ($1, $2, $3, 'admin')
ON CONFLICT (email) DO NOTHING`,
		cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	for _, item := range cfg.Categories {
		if _, err := conn.Exec(`
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO NOTHING`, item.Name, item.Slug); err != nil {
			return fmt.Errorf("seed category %q: %w", item.Name, err)
		}
	}

	for _, item := range cfg.Departments {
		if _, err := conn.Exec(`
INSERT INTO departments (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO NOTHING`, item.Name, item.Slug); err != nil {
			return fmt.Errorf("seed department %q: %w", item.Name, err)
		}
	}

	return nil
}

// MigrateDown drops the newsroom tables in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(conn *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS departments`,
		`DROP TABLE IF EXISTS categories`,
	}
	for _, stmt := range drops {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
