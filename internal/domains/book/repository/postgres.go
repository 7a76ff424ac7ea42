package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domains/book"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listCacheKey = "books:all"
	listCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, entity *book.Book) (*book.Book, error) {
	const query = `
		INSERT INTO books (
			title, author, description, pdf_object,
			cover_object, publication_year, discipline, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now().UTC()
	}

	row := r.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Author,
		entity.Description,
		entity.PDFObject,
		entity.CoverObject,
		entity.PublicationYear,
		entity.Discipline.String(),
		entity.CreatedAt,
	)

	if err := row.Scan(&entity.ID, &entity.CreatedAt); err != nil {
		logger.Error("book create: database error", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidateList(ctx)
	return entity, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	const query = `
		SELECT id, title, author, description, pdf_object,
		       cover_object, publication_year, discipline, created_at
		FROM books
		WHERE id = $1
	`

	entity, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		logger.Error("book get: database error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	var cached []book.Book
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	const query = `
		SELECT id, title, author, description, pdf_object,
		       cover_object, publication_year, discipline, created_at
		FROM books
		ORDER BY created_at DESC, id DESC
	`

	books, err := r.queryBooks(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, listCacheKey, books, listCacheTTL); err != nil {
		logger.Error("book list: cache write failed", err)
	}
	return books, nil
}

func (r *postgresRepository) Search(ctx context.Context, q string) ([]book.Book, error) {
	const query = `
		SELECT id, title, author, description, pdf_object,
		       cover_object, publication_year, discipline, created_at
		FROM books
		WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
	`
	return r.queryBooks(ctx, query, q)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		logger.Error("book delete: database error", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidateList(ctx)
	return nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("book query: database error", err)
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		entity, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) invalidateList(ctx context.Context) {
	if err := r.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Error("book cache: invalidation failed", err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row rowScanner) (*book.Book, error) {
	var (
		entity     book.Book
		discipline string
	)
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Author,
		&entity.Description,
		&entity.PDFObject,
		&entity.CoverObject,
		&entity.PublicationYear,
		&discipline,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entity.Discipline = book.Discipline(discipline)
	return &entity, nil
}
