package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/shared"
)

// BookCacheRepository persists the most recently fetched catalog so favorite
// listings can resolve book metadata when the API is unreachable.
//
// The cache is replaced wholesale on every successful catalog load, matching
// the view-model's no-incremental-merge semantics.
type BookCacheRepository struct {
	db *sql.DB
}

// NewBookCacheRepository creates a new [BookCacheRepository] with the given database connection
func NewBookCacheRepository(db *sql.DB) *BookCacheRepository {
	return &BookCacheRepository{db: db}
}

// ReplaceAll swaps the cached catalog for the given books in one transaction.
func (r *BookCacheRepository) ReplaceAll(books []models.Book) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM books"); err != nil {
		return fmt.Errorf("failed to clear book cache: %w", err)
	}

	query := `
		INSERT INTO books (id, cache_id, title, author, genre_id, price, description, published_date, photo, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	for _, book := range books {
		var photo any = book.Photo
		if book.Photo == "" {
			photo = nil
		}

		_, err := tx.Exec(query,
			book.ID,
			shared.GenerateID(),
			book.Title,
			book.Author,
			book.GenreID,
			book.Price,
			book.Description,
			book.PublishedDate,
			photo,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to cache book %d: %w", book.ID, err)
		}
	}

	return tx.Commit()
}

// List returns all cached books ordered by id.
func (r *BookCacheRepository) List() ([]models.Book, error) {
	query := `
		SELECT id, title, author, genre_id, price, description, published_date, photo
		FROM books
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query book cache: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book cache: %w", err)
	}

	return books, nil
}

// Get retrieves a cached book by its catalog id.
func (r *BookCacheRepository) Get(id int) (*models.Book, error) {
	query := `
		SELECT id, title, author, genre_id, price, description, published_date, photo
		FROM books
		WHERE id = ?
	`

	row := r.db.QueryRow(query, id)
	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: book %d not cached", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Count returns the number of cached books.
func (r *BookCacheRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count book cache: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (models.Book, error) {
	var (
		book  models.Book
		photo sql.NullString
	)

	err := s.Scan(&book.ID, &book.Title, &book.Author, &book.GenreID, &book.Price, &book.Description, &book.PublishedDate, &photo)
	if err == sql.ErrNoRows {
		return book, err
	}
	if err != nil {
		return book, fmt.Errorf("failed to scan book: %w", err)
	}

	if photo.Valid {
		book.Photo = photo.String
	}
	return book, nil
}
