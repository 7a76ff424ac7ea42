package repository

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entry *category.Entry) (*category.Entry, error) {
	const query = `
		INSERT INTO category_entries (
			category_key, title, author, source, cover_object, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	row := r.pool.QueryRow(ctx, query,
		entry.CategoryKey.String(),
		entry.Title,
		entry.Author,
		entry.Source,
		entry.CoverObject,
		entry.CreatedAt,
	)

	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		logger.Error("category entry create: database error", err)
		return nil, fmt.Errorf("failed to create category entry: %w", err)
	}
	return entry, nil
}

func (r *postgresRepository) List(ctx context.Context, key book.Discipline) ([]category.Entry, error) {
	const query = `
		SELECT id, category_key, title, author, source, cover_object, created_at
		FROM category_entries
		WHERE category_key = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.queryEntries(ctx, query, key.String())
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]category.Entry, error) {
	const query = `
		SELECT id, category_key, title, author, source, cover_object, created_at
		FROM category_entries
		ORDER BY created_at DESC, id DESC
	`
	return r.queryEntries(ctx, query)
}

func (r *postgresRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]category.Entry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("category entries query: database error", err)
		return nil, fmt.Errorf("failed to query category entries: %w", err)
	}
	defer rows.Close()

	entries := []category.Entry{}
	for rows.Next() {
		var (
			entry category.Entry
			key   string
		)
		err := rows.Scan(
			&entry.ID,
			&key,
			&entry.Title,
			&entry.Author,
			&entry.Source,
			&entry.CoverObject,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category entry: %w", err)
		}
		entry.CategoryKey = book.Discipline(key)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category entries: %w", err)
	}
	return entries, nil
}
